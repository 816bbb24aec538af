package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	"github.com/finledger/finledger/internal/models"
	"github.com/finledger/finledger/internal/utils/mapping"
	"github.com/finledger/finledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxValidationRepository struct {
	BaseRepository
}

// newPgxValidationRepository creates a new repository for validation results
// and run coordination.
func newPgxValidationRepository(pool *pgxpool.Pool) portsrepo.ValidationRepositoryFacade {
	return &PgxValidationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ValidationRepositoryFacade = (*PgxValidationRepository)(nil)

// SaveResults appends a batch of validation results. The table is append-only;
// there is no update or delete path.
func (r *PgxValidationRepository) SaveResults(ctx context.Context, results []domain.ValidationResult) error {
	if len(results) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO validation_results (
			result_id, tenant_id, run_id, check_kind, status,
			expected, actual, discrepancy, details, entity_refs, checked_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, result := range results {
		m := mapping.ToModelValidationResult(result)
		batch.Queue(query,
			m.ResultID,
			m.TenantID,
			m.RunID,
			m.CheckKind,
			m.Status,
			m.Expected,
			m.Actual,
			m.Discrepancy,
			m.Details,
			m.EntityRefs,
			m.CheckedAt,
		)
	}

	br := r.Pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute validation result insert batch", err)
	}
	return nil
}

// ListResults retrieves a token-paginated result history, newest first.
func (r *PgxValidationRepository) ListResults(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ValidationResult, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT result_id, tenant_id, run_id, check_kind, status,
		       expected, actual, discrepancy, details, entity_refs, checked_at
		FROM validation_results
		WHERE tenant_id = $1
	`
	args := []interface{}{tenantID}

	if nextToken != nil && *nextToken != "" {
		fields, decodeErr := pagination.DecodeMultiFieldToken(*nextToken)
		if decodeErr != nil || len(fields) != 2 {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		lastCheckedAt, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		baseQuery += ` AND (checked_at, result_id) < ($2, $3)`
		args = append(args, lastCheckedAt, fields[1])
	}

	query := baseQuery + ` ORDER BY checked_at DESC, result_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query validation results for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelResults := make([]models.ValidationResult, 0, fetchLimit)
	for rows.Next() {
		var m models.ValidationResult
		if err := rows.Scan(
			&m.ResultID,
			&m.TenantID,
			&m.RunID,
			&m.CheckKind,
			&m.Status,
			&m.Expected,
			&m.Actual,
			&m.Discrepancy,
			&m.Details,
			&m.EntityRefs,
			&m.CheckedAt,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan validation result row", err)
		}
		modelResults = append(modelResults, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating validation result rows", err)
	}

	var nextTokenVal *string
	results := modelResults
	if len(modelResults) > limit {
		last := modelResults[limit-1]
		token := pagination.EncodeMultiFieldToken(last.CheckedAt.Format(time.RFC3339Nano), last.ResultID)
		nextTokenVal = &token
		results = modelResults[:limit]
	}

	domainResults := make([]domain.ValidationResult, len(results))
	for i, m := range results {
		domainResults[i] = mapping.ToDomainValidationResult(m)
	}
	return domainResults, nextTokenVal, nil
}

// AcquireRunLock claims the per-tenant run lock via an upsert on the lock row.
// The conditional update only fires when the previous holder's lease has
// expired, so exactly one claimant wins even under concurrent schedulers.
func (r *PgxValidationRepository) AcquireRunLock(ctx context.Context, run domain.ValidationRun) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `
		INSERT INTO validation_locks (tenant_id, run_id, lease_expiry)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_id) DO UPDATE
		SET run_id = EXCLUDED.run_id, lease_expiry = EXCLUDED.lease_expiry
		WHERE validation_locks.lease_expiry <= $4;
	`
	cmdTag, err := tx.Exec(ctx, lockQuery, run.TenantID, run.RunID, run.LeaseExpiry, run.StartedAt)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to claim validation lock for tenant "+run.TenantID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return false, nil
	}

	m := mapping.ToModelValidationRun(run)
	runQuery := `
		INSERT INTO validation_runs (run_id, tenant_id, status, attempt, started_at, finished_at, lease_expiry, failure_note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, runQuery,
		m.RunID,
		m.TenantID,
		m.Status,
		m.Attempt,
		m.StartedAt,
		m.FinishedAt,
		m.LeaseExpiry,
		m.FailureNote,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to insert validation run "+m.RunID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

// FinishRun records the run's terminal status and releases the lock.
func (r *PgxValidationRepository) FinishRun(ctx context.Context, runID string, status domain.RunStatus, finishedAt time.Time, note string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	runQuery := `
		UPDATE validation_runs
		SET status = $2, finished_at = $3, failure_note = $4
		WHERE run_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, runQuery, runID, string(status), finishedAt, note)
	if err != nil {
		return apperrors.NewAppError(500, "failed to finish validation run "+runID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM validation_locks WHERE run_id = $1;`, runID); err != nil {
		return apperrors.NewAppError(500, "failed to release validation lock for run "+runID, err)
	}
	return r.Commit(ctx, tx)
}
