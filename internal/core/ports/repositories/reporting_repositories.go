package repositories

import (
	"context"
	"time"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregate queries the statement
// generators and the validation engine are built on. All queries consider
// POSTED entries only, ordered by (posted_at, sequence_no).
type ReportingRepository interface {
	// GetAccountBalances returns the net balance of every account as of the
	// given date, signed by the balance-sheet convention (debit-normal
	// accounts positive on debits, credit-normal accounts positive on
	// credits). Includes deactivated accounts: deactivation blocks future
	// postings only, and excluding a carried balance would unbalance the
	// accounting equation.
	GetAccountBalances(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AccountNetAmount, error)

	// GetAccountBalance returns the net balance of a single account as of the
	// given date. Consistent with GetAccountBalances for the same date.
	GetAccountBalance(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error)

	// GetPeriodMovements returns net movements of revenue and expense accounts
	// within [from, to).
	GetPeriodMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountNetAmount, error)

	// GetTrialBalanceData returns per-account debit and credit totals for
	// entries posted within [from, to).
	GetTrialBalanceData(ctx context.Context, tenantID string, from, to time.Time) ([]domain.TrialBalanceRow, error)

	// GetDebitCreditTotals returns the grand debit and credit totals across all
	// entries posted within [from, to).
	GetDebitCreditTotals(ctx context.Context, tenantID string, from, to time.Time) (debits, credits decimal.Decimal, err error)
}
