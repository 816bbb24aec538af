package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates the read-only aggregate query repository
// backing the statement generators and the validation engine.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// signedNetExpr nets a line by the balance convention of its account: assets
// and expenses are debit-normal, the rest credit-normal.
const signedNetExpr = `
	CASE WHEN a.account_type IN ('ASSET', 'EXPENSE')
	     THEN l.debit - l.credit
	     ELSE l.credit - l.debit
	END
`

// GetAccountBalances returns the net balance of every account as of the given
// date, ordered by account code. Deactivated accounts are included:
// deactivation only blocks future postings, and dropping a nonzero balance
// from the aggregate would unbalance the accounting equation.
func (r *PgxReportingRepository) GetAccountBalances(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AccountNetAmount, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type, a.account_subtype,
		       COALESCE(SUM(` + signedNetExpr + `), 0) AS net_amount
		FROM accounts a
		LEFT JOIN (journal_entry_lines l
		           JOIN journal_entries e ON e.entry_id = l.entry_id
		                AND e.status = 'POSTED' AND e.posted_at <= $2)
		       ON l.account_id = a.account_id
		WHERE a.tenant_id = $1
		GROUP BY a.account_id, a.code, a.name, a.account_type, a.account_subtype
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account balances for tenant "+tenantID, err)
	}
	defer rows.Close()

	return scanNetAmounts(rows)
}

// GetAccountBalance returns the net balance of a single account as of the
// given date.
func (r *PgxReportingRepository) GetAccountBalance(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + signedNetExpr + `), 0)
		FROM accounts a
		LEFT JOIN (journal_entry_lines l
		           JOIN journal_entries e ON e.entry_id = l.entry_id
		                AND e.status = 'POSTED' AND e.posted_at <= $3)
		       ON l.account_id = a.account_id
		WHERE a.tenant_id = $1 AND a.account_id = $2
		GROUP BY a.account_id;
	`
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, tenantID, accountID, asOf).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to query balance for account "+accountID, err)
	}
	return balance, nil
}

// GetPeriodMovements returns net movements of revenue and expense accounts
// within [from, to).
func (r *PgxReportingRepository) GetPeriodMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountNetAmount, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type, a.account_subtype,
		       COALESCE(SUM(` + signedNetExpr + `), 0) AS net_amount
		FROM accounts a
		LEFT JOIN (journal_entry_lines l
		           JOIN journal_entries e ON e.entry_id = l.entry_id
		                AND e.status = 'POSTED' AND e.posted_at >= $2 AND e.posted_at < $3)
		       ON l.account_id = a.account_id
		WHERE a.tenant_id = $1 AND a.account_type IN ('REVENUE', 'EXPENSE')
		GROUP BY a.account_id, a.code, a.name, a.account_type, a.account_subtype
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query period movements for tenant "+tenantID, err)
	}
	defer rows.Close()

	return scanNetAmounts(rows)
}

// GetTrialBalanceData returns per-account debit and credit totals for entries
// posted within [from, to).
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, tenantID string, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		JOIN journal_entry_lines l ON l.account_id = a.account_id
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE a.tenant_id = $1
		  AND e.status = 'POSTED'
		  AND e.posted_at >= $2 AND e.posted_at < $3
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance data for tenant "+tenantID, err)
	}
	defer rows.Close()

	trialRows := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(
			&row.AccountID,
			&row.Code,
			&row.Name,
			&row.AccountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		trialRows = append(trialRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	return trialRows, nil
}

// GetDebitCreditTotals returns the grand debit and credit totals across all
// entries posted within [from, to).
func (r *PgxReportingRepository) GetDebitCreditTotals(ctx context.Context, tenantID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = $1
		  AND e.status = 'POSTED'
		  AND e.posted_at >= $2 AND e.posted_at < $3;
	`
	var debits, credits decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, tenantID, from, to).Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to query debit/credit totals for tenant "+tenantID, err)
	}
	return debits, credits, nil
}

func scanNetAmounts(rows pgx.Rows) ([]domain.AccountNetAmount, error) {
	amounts := []domain.AccountNetAmount{}
	for rows.Next() {
		var a domain.AccountNetAmount
		if err := rows.Scan(
			&a.AccountID,
			&a.Code,
			&a.Name,
			&a.AccountType,
			&a.AccountSubtype,
			&a.NetAmount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account net amount row", err)
		}
		amounts = append(amounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account net amount rows", err)
	}
	return amounts, nil
}
