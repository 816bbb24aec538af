package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
)

// Section labels, in presentation order per statement side.
var (
	assetSections = []sectionSpec{
		{domain.CurrentAsset, "Current Assets"},
		{domain.FixedAsset, "Fixed Assets"},
	}
	liabilitySections = []sectionSpec{
		{domain.CurrentLiability, "Current Liabilities"},
		{domain.LongTermLiability, "Long-Term Liabilities"},
	}
	equitySections = []sectionSpec{
		{domain.ContributedCapital, "Contributed Capital"},
		{domain.RetainedEarnings, "Retained Earnings"},
	}
	revenueSections = []sectionSpec{
		{domain.OperatingRevenue, "Operating Revenue"},
		{domain.OtherRevenue, "Other Revenue"},
	}
	expenseSections = []sectionSpec{
		{domain.OperatingExpense, "Operating Expenses"},
		{domain.OtherExpense, "Other Expenses"},
	}
)

type sectionSpec struct {
	subtype domain.AccountSubtype
	label   string
}

// statementService derives financial statements from posted entries. Both
// generators are deterministic: section order is fixed and the underlying
// queries order accounts by code, so identical ledgers render identically.
type statementService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewStatementService creates a new StatementService.
func NewStatementService(reportingRepo portsrepo.ReportingRepository) portssvc.StatementSvcFacade {
	return &statementService{reportingRepo: reportingRepo}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// GenerateBalanceSheet derives a balance sheet as of a date. Net income of
// the period to date rolls into equity as current earnings, so a balanced
// ledger always satisfies assets == liabilities + equity. An empty ledger
// yields an all-zero snapshot, not an error.
func (s *statementService) GenerateBalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := s.reportingRepo.GetAccountBalances(ctx, tenantID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load account balances: %w", err)
	}

	byType := make(map[domain.AccountType][]domain.AccountNetAmount)
	for _, b := range balances {
		byType[b.AccountType] = append(byType[b.AccountType], b)
	}

	assets, totalAssets := buildSections(assetSections, byType[domain.Asset])
	liabilities, totalLiabilities := buildSections(liabilitySections, byType[domain.Liability])
	equity, totalEquity := buildSections(equitySections, byType[domain.Equity])

	// Revenue and expense balances to date are unclosed earnings. They belong
	// to the owners, so they render as a synthetic equity section.
	netIncome := sumNet(byType[domain.Revenue]).Sub(sumNet(byType[domain.Expense]))
	equity = append(equity, domain.StatementSection{
		Label: "Current Period Earnings",
		Items: []domain.StatementItem{{
			Code:   "—",
			Name:   "Net income to date",
			Amount: netIncome,
		}},
		Subtotal: netIncome,
	})
	totalEquity = totalEquity.Add(netIncome)

	sheet := &domain.BalanceSheet{
		StatementID:               uuid.NewString(),
		TenantID:                  tenantID,
		AsOf:                      asOf,
		GeneratedAt:               time.Now().UTC(),
		Assets:                    assets,
		Liabilities:               liabilities,
		Equity:                    equity,
		TotalAssets:               totalAssets,
		TotalLiabilities:          totalLiabilities,
		TotalEquity:               totalEquity,
		TotalLiabilitiesAndEquity: totalLiabilities.Add(totalEquity),
	}

	s.LogInfo(ctx, "Balance sheet generated", "statement_id", sheet.StatementID, "as_of", asOf)
	return sheet, nil
}

// GenerateIncomeStatement derives an income statement for [start, end),
// summing only movements posted within the period.
func (s *statementService) GenerateIncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, fmt.Errorf("period end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	movements, err := s.reportingRepo.GetPeriodMovements(ctx, tenantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load period movements: %w", err)
	}

	byType := make(map[domain.AccountType][]domain.AccountNetAmount)
	for _, m := range movements {
		byType[m.AccountType] = append(byType[m.AccountType], m)
	}

	revenue, totalRevenue := buildSections(revenueSections, byType[domain.Revenue])
	expenses, totalExpenses := buildSections(expenseSections, byType[domain.Expense])

	stmt := &domain.IncomeStatement{
		StatementID:   uuid.NewString(),
		TenantID:      tenantID,
		PeriodStart:   start,
		PeriodEnd:     end,
		GeneratedAt:   time.Now().UTC(),
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetIncome:     totalRevenue.Sub(totalExpenses),
	}

	s.LogInfo(ctx, "Income statement generated", "statement_id", stmt.StatementID)
	return stmt, nil
}

func (s *statementService) TrialBalance(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load trial balance data: %w", err)
	}
	return rows, nil
}

// buildSections groups account amounts into the fixed subtype sections,
// preserving the query's per-code ordering within each section. Zero-balance
// accounts are omitted from items but every section is always emitted.
func buildSections(specs []sectionSpec, accounts []domain.AccountNetAmount) ([]domain.StatementSection, decimal.Decimal) {
	sections := make([]domain.StatementSection, 0, len(specs))
	total := decimal.Zero

	for _, spec := range specs {
		section := domain.StatementSection{Label: spec.label, Subtotal: decimal.Zero}
		for _, acc := range accounts {
			if acc.AccountSubtype != spec.subtype || acc.NetAmount.IsZero() {
				continue
			}
			section.Items = append(section.Items, domain.StatementItem{
				AccountID: acc.AccountID,
				Code:      acc.Code,
				Name:      acc.Name,
				Amount:    acc.NetAmount,
			})
			section.Subtotal = section.Subtotal.Add(acc.NetAmount)
		}
		total = total.Add(section.Subtotal)
		sections = append(sections, section)
	}
	return sections, total
}

func sumNet(accounts []domain.AccountNetAmount) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.NetAmount)
	}
	return total
}
