package services

import (
	"context"
	"time"

	"github.com/finledger/finledger/internal/core/domain"
)

// StatementSvcFacade generates financial statements. Both generators are pure
// functions of posted entries as of generation time: identical inputs produce
// identical output.
type StatementSvcFacade interface {
	// GenerateBalanceSheet derives a balance sheet snapshot as of a date.
	// Produces an all-zero snapshot for an empty ledger, never an error.
	GenerateBalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)

	// GenerateIncomeStatement derives an income statement for [start, end),
	// summing revenue and expense movements within the period only.
	GenerateIncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error)

	// TrialBalance returns per-account debit/credit totals for the period.
	TrialBalance(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error)
}
