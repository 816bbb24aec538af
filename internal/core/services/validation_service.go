package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
)

// validationService independently re-derives statement totals and checks them
// against reported values. A business discrepancy is a FAIL result carrying
// the exact difference; it is recorded and never auto-corrected. Errors are
// reserved for infrastructure failures.
type validationService struct {
	BaseService
	statementSvc   portssvc.StatementSvcFacade
	journalRepo    portsrepo.JournalReader
	reportingRepo  portsrepo.ReportingRepository
	validationRepo portsrepo.ValidationRepositoryFacade
	tenantRepo     portsrepo.TenantReader
	fxRepo         portsrepo.FxRateRepository
}

// NewValidationService creates a new ValidationService.
func NewValidationService(
	statementSvc portssvc.StatementSvcFacade,
	journalRepo portsrepo.JournalReader,
	reportingRepo portsrepo.ReportingRepository,
	validationRepo portsrepo.ValidationRepositoryFacade,
	tenantRepo portsrepo.TenantReader,
	fxRepo portsrepo.FxRateRepository,
) portssvc.ValidationSvcFacade {
	return &validationService{
		statementSvc:   statementSvc,
		journalRepo:    journalRepo,
		reportingRepo:  reportingRepo,
		validationRepo: validationRepo,
		tenantRepo:     tenantRepo,
		fxRepo:         fxRepo,
	}
}

var _ portssvc.ValidationSvcFacade = (*validationService)(nil)

// ValidateAccountingEquation checks assets == liabilities + equity with exact
// decimal equality. No tolerance: a one-cent discrepancy is a FAIL.
func (s *validationService) ValidateAccountingEquation(ctx context.Context, sheet *domain.BalanceSheet, runID string) (domain.ValidationResult, error) {
	expected := sheet.TotalLiabilities.Add(sheet.TotalEquity)
	actual := sheet.TotalAssets

	result := s.newResult(sheet.TenantID, runID, domain.CheckAccountingEquation, expected, actual)
	result.EntityRefs = []string{sheet.StatementID}
	if !actual.Equal(expected) {
		result.Status = domain.CheckFail
		result.Details = fmt.Sprintf("assets %s != liabilities+equity %s", actual.String(), expected.String())
		s.LogWarn(ctx, "Accounting equation check failed",
			"run_id", runID, "discrepancy", result.Discrepancy.String())
	}
	return result, nil
}

// ValidateIncomeStatement checks net income == revenue - expenses on the
// reported statement.
func (s *validationService) ValidateIncomeStatement(ctx context.Context, stmt *domain.IncomeStatement, runID string) (domain.ValidationResult, error) {
	expected := stmt.TotalRevenue.Sub(stmt.TotalExpenses)
	actual := stmt.NetIncome

	result := s.newResult(stmt.TenantID, runID, domain.CheckIncomeStatement, expected, actual)
	result.EntityRefs = []string{stmt.StatementID}
	if !actual.Equal(expected) {
		result.Status = domain.CheckFail
		result.Details = fmt.Sprintf("net income %s != revenue-expenses %s", actual.String(), expected.String())
		s.LogWarn(ctx, "Income statement check failed",
			"run_id", runID, "discrepancy", result.Discrepancy.String())
	}
	return result, nil
}

// ValidateTrialBalance checks sum(debits) == sum(credits) across every entry
// posted within [from, to). A failure here points at historical-data
// corruption, since posting rejects unbalanced entries up front.
func (s *validationService) ValidateTrialBalance(ctx context.Context, from, to time.Time, runID string) (domain.ValidationResult, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	debits, credits, err := s.reportingRepo.GetDebitCreditTotals(ctx, tenantID, from, to)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("failed to load debit/credit totals: %w", err)
	}

	result := s.newResult(tenantID, runID, domain.CheckTrialBalance, credits, debits)
	if !debits.Equal(credits) {
		result.Status = domain.CheckFail
		result.Details = fmt.Sprintf("total debits %s != total credits %s", debits.String(), credits.String())
		s.LogWarn(ctx, "Trial balance check failed",
			"run_id", runID, "discrepancy", result.Discrepancy.String())
	}
	return result, nil
}

// ValidateCurrencyConversion checks that a mixed-currency entry balances once
// every leg is converted to the tenant's base currency at the stored rate,
// compared at the rate's precision. A missing rate is a data defect and is
// reported as a FAIL, not an error.
func (s *validationService) ValidateCurrencyConversion(ctx context.Context, entry *domain.JournalEntry, runID string) (domain.ValidationResult, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, entry.TenantID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("failed to load tenant %s: %w", entry.TenantID, err)
	}
	base := tenant.BaseCurrencyCode

	at := entry.EntryDate
	if entry.PostedAt != nil {
		at = *entry.PostedAt
	}

	net := decimal.Zero
	for currency, totals := range entry.TotalsByCurrency() {
		legNet := totals.Debits.Sub(totals.Credits)
		if currency == base {
			net = net.Add(legNet)
			continue
		}

		rate, err := s.fxRepo.FindRate(ctx, currency, base, at)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				result := s.newResult(entry.TenantID, runID, domain.CheckCurrencyConversion, decimal.Zero, legNet)
				result.Status = domain.CheckFail
				result.Details = fmt.Sprintf("no %s/%s rate loaded for %s", currency, base, at.Format(time.RFC3339))
				result.EntityRefs = []string{entry.EntryID}
				return result, nil
			}
			return domain.ValidationResult{}, fmt.Errorf("failed to load %s/%s rate: %w", currency, base, err)
		}
		net = net.Add(rate.Convert(legNet))
	}

	result := s.newResult(entry.TenantID, runID, domain.CheckCurrencyConversion, decimal.Zero, net)
	result.EntityRefs = []string{entry.EntryID}
	if !net.IsZero() {
		result.Status = domain.CheckFail
		result.Details = fmt.Sprintf("entry nets to %s %s after conversion", net.String(), base)
		s.LogWarn(ctx, "Currency conversion check failed",
			"run_id", runID, "entry_id", entry.EntryID, "discrepancy", net.String())
	}
	return result, nil
}

// RunAll executes the full check suite for the tenant bound to the context
// and persists the results as one append-only batch. The balance sheet and
// income statement are regenerated fresh so the checks never trust cached
// statements.
func (s *validationService) RunAll(ctx context.Context, runID string) ([]domain.ValidationResult, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	periodStart := time.Time{} // full history

	sheet, err := s.statementSvc.GenerateBalanceSheet(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate balance sheet for validation: %w", err)
	}
	stmt, err := s.statementSvc.GenerateIncomeStatement(ctx, periodStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate income statement for validation: %w", err)
	}

	results := make([]domain.ValidationResult, 0, len(domain.AllCheckKinds))

	equation, err := s.ValidateAccountingEquation(ctx, sheet, runID)
	if err != nil {
		return nil, err
	}
	results = append(results, equation)

	trial, err := s.ValidateTrialBalance(ctx, periodStart, now, runID)
	if err != nil {
		return nil, err
	}
	results = append(results, trial)

	income, err := s.ValidateIncomeStatement(ctx, stmt, runID)
	if err != nil {
		return nil, err
	}
	results = append(results, income)

	mixed, err := s.journalRepo.ListMixedCurrencyEntries(ctx, tenantID, periodStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list mixed-currency entries: %w", err)
	}
	for i := range mixed {
		conversion, err := s.ValidateCurrencyConversion(ctx, &mixed[i], runID)
		if err != nil {
			return nil, err
		}
		results = append(results, conversion)
	}

	if err := s.validationRepo.SaveResults(ctx, results); err != nil {
		return nil, fmt.Errorf("failed to persist validation results: %w", err)
	}

	failures := 0
	for _, r := range results {
		if r.Failed() {
			failures++
		}
	}
	s.LogInfo(ctx, "Validation run completed",
		"run_id", runID, "checks", len(results), "failures", failures)
	return results, nil
}

func (s *validationService) ListResults(ctx context.Context, limit int, nextToken *string) ([]domain.ValidationResult, *string, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	results, token, err := s.validationRepo.ListResults(ctx, tenantID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list validation results: %w", err)
	}
	return results, token, nil
}

// newResult builds a PASS result for the given check; callers flip it to FAIL
// and fill in details when the comparison fails. Discrepancy is always
// actual - expected so a FAIL's sign tells which side is heavy.
func (s *validationService) newResult(tenantID, runID string, kind domain.CheckKind, expected, actual decimal.Decimal) domain.ValidationResult {
	return domain.ValidationResult{
		ResultID:    uuid.NewString(),
		TenantID:    tenantID,
		RunID:       runID,
		Check:       kind,
		Status:      domain.CheckPass,
		Expected:    expected,
		Actual:      actual,
		Discrepancy: actual.Sub(expected),
		CheckedAt:   time.Now().UTC(),
	}
}
