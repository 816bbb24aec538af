package dto

import (
	"github.com/finledger/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse is the result of an account balance query.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      string          `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// Statements are returned as-is; the domain snapshots already are
// presentation-shaped and never mutated after creation.

// BalanceSheetResponse wraps a balance sheet snapshot.
type BalanceSheetResponse struct {
	BalanceSheet *domain.BalanceSheet `json:"balanceSheet"`
}

// IncomeStatementResponse wraps an income statement snapshot.
type IncomeStatementResponse struct {
	IncomeStatement *domain.IncomeStatement `json:"incomeStatement"`
}
