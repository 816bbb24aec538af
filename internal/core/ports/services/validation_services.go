package services

import (
	"context"
	"time"

	"github.com/finledger/finledger/internal/core/domain"
)

// ValidationSvcFacade independently re-derives statement totals and checks
// them against reported values. Business discrepancies are returned as FAIL
// results, never as errors; only infrastructure failures surface as errors.
type ValidationSvcFacade interface {
	// ValidateAccountingEquation checks assets == liabilities + equity with
	// exact decimal equality.
	ValidateAccountingEquation(ctx context.Context, sheet *domain.BalanceSheet, runID string) (domain.ValidationResult, error)

	// ValidateIncomeStatement checks net income == revenue - expenses.
	ValidateIncomeStatement(ctx context.Context, stmt *domain.IncomeStatement, runID string) (domain.ValidationResult, error)

	// ValidateTrialBalance checks sum(debits) == sum(credits) across all
	// entries posted in the period. A failure indicates historical-data
	// corruption or a currency-conversion defect.
	ValidateTrialBalance(ctx context.Context, from, to time.Time, runID string) (domain.ValidationResult, error)

	// ValidateCurrencyConversion checks that a mixed-currency entry balances
	// after conversion at the stored rate's precision.
	ValidateCurrencyConversion(ctx context.Context, entry *domain.JournalEntry, runID string) (domain.ValidationResult, error)

	// RunAll executes the full check suite for the tenant bound to the
	// context, persists the results, and returns them.
	RunAll(ctx context.Context, runID string) ([]domain.ValidationResult, error)

	// ListResults retrieves the append-only validation history, newest first.
	ListResults(ctx context.Context, limit int, nextToken *string) ([]domain.ValidationResult, *string, error)
}
