package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementItem is a single account row within a statement section.
type StatementItem struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// StatementSection groups items under a category label with a subtotal.
type StatementSection struct {
	Label    string          `json:"label"`
	Items    []StatementItem `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// BalanceSheet is a derived, disposable snapshot of the tenant's financial
// position as of a date. It is never mutated after creation, only superseded
// by a newer snapshot.
type BalanceSheet struct {
	StatementID               string             `json:"statementID"`
	TenantID                  string             `json:"tenantID"`
	AsOf                      time.Time          `json:"asOf"`
	GeneratedAt               time.Time          `json:"generatedAt"`
	Assets                    []StatementSection `json:"assets"`
	Liabilities               []StatementSection `json:"liabilities"`
	Equity                    []StatementSection `json:"equity"`
	TotalAssets               decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal    `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal    `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal    `json:"totalLiabilitiesAndEquity"`
}

// IncomeStatement is a derived snapshot of revenue and expense movements
// within [PeriodStart, PeriodEnd).
type IncomeStatement struct {
	StatementID   string             `json:"statementID"`
	TenantID      string             `json:"tenantID"`
	PeriodStart   time.Time          `json:"periodStart"`
	PeriodEnd     time.Time          `json:"periodEnd"`
	GeneratedAt   time.Time          `json:"generatedAt"`
	Revenue       []StatementSection `json:"revenue"`
	Expenses      []StatementSection `json:"expenses"`
	TotalRevenue  decimal.Decimal    `json:"totalRevenue"`
	TotalExpenses decimal.Decimal    `json:"totalExpenses"`
	NetIncome     decimal.Decimal    `json:"netIncome"`
}

// AccountNetAmount is an account with its net movement or balance, as
// aggregated by the reporting queries.
type AccountNetAmount struct {
	AccountID      string          `json:"accountID"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	AccountSubtype AccountSubtype  `json:"accountSubtype"`
	NetAmount      decimal.Decimal `json:"netAmount"`
}

// TrialBalanceRow is a single account row in a trial balance.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
