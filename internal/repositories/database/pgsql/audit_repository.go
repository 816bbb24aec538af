package pgsql

import (
	"context"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	"github.com/finledger/finledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the audit record sink.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

const auditInsertQuery = `
	INSERT INTO audit_records (record_id, tenant_id, actor, action, entity_type, entity_id, snapshot, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// AppendRecord appends a single audit record outside any transaction.
func (r *PgxAuditRepository) AppendRecord(ctx context.Context, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	_, err := r.Pool.Exec(ctx, auditInsertQuery,
		m.RecordID,
		m.TenantID,
		m.Actor,
		m.Action,
		m.EntityType,
		m.EntityID,
		m.Snapshot,
		m.OccurredAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit record "+m.RecordID, err)
	}
	return nil
}
