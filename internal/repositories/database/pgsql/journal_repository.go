package pgsql

import (
	"context"
	"errors"
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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `
	entry_id, tenant_id, reference, description, transaction_type, status,
	sequence_no, entry_date, posted_at, reversal_of_entry_id, reversed_by_entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

const lineColumns = `
	line_id, entry_id, tenant_id, account_id, debit, credit, currency_code, memo
`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.Reference,
		&m.Description,
		&m.TransactionType,
		&m.Status,
		&m.SequenceNo,
		&m.EntryDate,
		&m.PostedAt,
		&m.ReversalOfEntryID,
		&m.ReversedByEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.TenantID,
		&m.AccountID,
		&m.Debit,
		&m.Credit,
		&m.CurrencyCode,
		&m.Memo,
	)
	return m, err
}

// FindEntryByID retrieves an entry with its lines. Not tenant-filtered: the
// service layer compares the owner so cross-tenant probes can be logged.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	lines, err := r.findLines(ctx, entryID)
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m, lines)
	return &entry, nil
}

// FindEntryByReference retrieves an entry by its per-tenant unique reference.
func (r *PgxJournalRepository) FindEntryByReference(ctx context.Context, tenantID, reference string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND reference = $2;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, tenantID, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by reference "+reference, err)
	}

	lines, err := r.findLines(ctx, m.EntryID)
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m, lines)
	return &entry, nil
}

func (r *PgxJournalRepository) findLines(ctx context.Context, entryID string) ([]models.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY line_id;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}
	return lines, nil
}

// ListEntries retrieves a filtered, token-paginated list of entries. Posted
// entries order by (posted_at, sequence_no) descending; drafts sort last by
// creation time. Lines are not loaded for list pages.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, tenantID string, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT DISTINCT ` + entryColumns + ` FROM journal_entries e`
	filterClause := ` WHERE e.tenant_id = $1`
	args := []interface{}{tenantID}

	if filter.AccountID != nil {
		baseQuery = `
			SELECT DISTINCT ` + prefixedEntryColumns() + `
			FROM journal_entries e
			JOIN journal_entry_lines l ON l.entry_id = e.entry_id`
		filterClause += ` AND l.account_id = $` + strconv.Itoa(len(args)+1)
		args = append(args, *filter.AccountID)
	}
	if filter.Status != nil {
		filterClause += ` AND e.status = $` + strconv.Itoa(len(args)+1)
		args = append(args, string(*filter.Status))
	}
	if filter.DateFrom != nil {
		filterClause += ` AND e.entry_date >= $` + strconv.Itoa(len(args)+1)
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		filterClause += ` AND e.entry_date < $` + strconv.Itoa(len(args)+1)
		args = append(args, *filter.DateTo)
	}

	if nextToken != nil && *nextToken != "" {
		fields, decodeErr := pagination.DecodeMultiFieldToken(*nextToken)
		if decodeErr != nil || len(fields) != 2 {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		lastDate, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		filterClause += ` AND (e.entry_date, e.created_at) < ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		lastCreated, parseErr := time.Parse(time.RFC3339Nano, fields[1])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		args = append(args, lastDate, lastCreated)
	}

	orderByClause := ` ORDER BY entry_date DESC, created_at DESC`
	query := baseQuery + filterClause + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeMultiFieldToken(
			last.EntryDate.Format(time.RFC3339Nano),
			last.CreatedAt.Format(time.RFC3339Nano),
		)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	entries := make([]domain.JournalEntry, len(results))
	for i, m := range results {
		entries[i] = mapping.ToDomainJournalEntry(m, nil)
	}
	return entries, nextTokenVal, nil
}

// ListMixedCurrencyEntries retrieves posted entries in [from, to) whose lines
// span more than one currency, with lines loaded.
func (r *PgxJournalRepository) ListMixedCurrencyEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + prefixedEntryColumns() + `
		FROM journal_entries e
		WHERE e.tenant_id = $1
		  AND e.status = 'POSTED'
		  AND e.posted_at >= $2 AND e.posted_at < $3
		  AND (SELECT COUNT(DISTINCT l.currency_code) FROM journal_entry_lines l WHERE l.entry_id = e.entry_id) > 1
		ORDER BY e.posted_at, e.sequence_no;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query mixed-currency entries for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	entries := make([]domain.JournalEntry, 0, len(modelEntries))
	for _, m := range modelEntries {
		lines, err := r.findLines(ctx, m.EntryID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m, lines))
	}
	return entries, nil
}

// SaveDraft persists a new draft entry and its lines in one transaction.
func (r *PgxJournalRepository) SaveDraft(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertEntry(ctx, tx, m); err != nil {
		return err
	}
	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateDraft replaces the scalar fields and lines of a draft entry. The
// status guard in the UPDATE makes posted entries unreachable from this code
// path regardless of what the caller checked.
func (r *PgxJournalRepository) UpdateDraft(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE journal_entries
		SET description = $3,
		    entry_date = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE tenant_id = $1 AND entry_id = $2 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TenantID,
		m.EntryID,
		m.Description,
		m.EntryDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update draft entry "+m.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return draftGuardError(ctx, tx, m.TenantID, m.EntryID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for draft "+m.EntryID, err)
	}
	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// MarkPosted transitions a draft to POSTED in one transaction: assigns the
// per-tenant sequence number, sets posted_at, and appends the audit record.
func (r *PgxJournalRepository) MarkPosted(ctx context.Context, tenantID, entryID string, postedAt time.Time, audit domain.AuditRecord) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextSequenceNo(ctx, tx, tenantID)
	if err != nil {
		return 0, err
	}

	query := `
		UPDATE journal_entries
		SET status = 'POSTED',
		    sequence_no = $3,
		    posted_at = $4,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE tenant_id = $1 AND entry_id = $2 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, query, tenantID, entryID, seq, postedAt, audit.Actor)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to post entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, draftGuardError(ctx, tx, tenantID, entryID)
	}

	if err := insertAuditRecord(ctx, tx, audit); err != nil {
		return 0, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return seq, nil
}

// SaveReversal atomically persists a reversing entry as POSTED, transitions
// the original to REVERSED, links the two, and appends the audit records.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversal domain.JournalEntry, originalEntryID string, audit []domain.AuditRecord) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextSequenceNo(ctx, tx, reversal.TenantID)
	if err != nil {
		return 0, err
	}
	reversal.SequenceNo = seq

	m := mapping.ToModelJournalEntry(reversal)
	if err := insertEntry(ctx, tx, m); err != nil {
		return 0, err
	}
	if err := insertLines(ctx, tx, reversal.Lines); err != nil {
		return 0, err
	}

	// The POSTED guard keeps a concurrent second reversal from touching an
	// already-reversed original.
	query := `
		UPDATE journal_entries
		SET status = 'REVERSED',
		    reversed_by_entry_id = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE tenant_id = $1 AND entry_id = $2 AND status = 'POSTED';
	`
	cmdTag, err := tx.Exec(ctx, query,
		reversal.TenantID,
		originalEntryID,
		reversal.EntryID,
		reversal.LastUpdatedAt,
		reversal.LastUpdatedBy,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark entry "+originalEntryID+" reversed", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrInvalidStateTransition
	}

	for _, record := range audit {
		if err := insertAuditRecord(ctx, tx, record); err != nil {
			return 0, err
		}
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return seq, nil
}

// nextSequenceNo claims the tenant's next posting sequence number. The upsert
// serializes concurrent postings for the same tenant on the counter row, which
// is what makes the per-tenant sequence gap-free and monotonic.
func nextSequenceNo(ctx context.Context, tx pgx.Tx, tenantID string) (int64, error) {
	query := `
		INSERT INTO tenant_sequences (tenant_id, next_sequence_no)
		VALUES ($1, 2)
		ON CONFLICT (tenant_id)
		DO UPDATE SET next_sequence_no = tenant_sequences.next_sequence_no + 1
		RETURNING next_sequence_no - 1;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, tenantID).Scan(&seq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to claim sequence number for tenant "+tenantID, err)
	}
	return seq, nil
}

func insertEntry(ctx context.Context, tx pgx.Tx, m models.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.TenantID,
		m.Reference,
		m.Description,
		m.TransactionType,
		m.Status,
		m.SequenceNo,
		m.EntryDate,
		m.PostedAt,
		m.ReversalOfEntryID,
		m.ReversedByEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}
	return nil
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query,
			m.LineID,
			m.EntryID,
			m.TenantID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.CurrencyCode,
			m.Memo,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line insert batch", err)
	}
	return nil
}

func insertAuditRecord(ctx context.Context, tx pgx.Tx, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	_, err := tx.Exec(ctx, auditInsertQuery,
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

// draftGuardError distinguishes "entry missing" from "entry not a draft"
// after a zero-row guarded update.
func draftGuardError(ctx context.Context, tx pgx.Tx, tenantID, entryID string) error {
	var status string
	err := tx.QueryRow(ctx,
		`SELECT status FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2;`,
		tenantID, entryID,
	).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to check entry status for "+entryID, err)
	}
	return apperrors.ErrInvalidStateTransition
}

func prefixedEntryColumns() string {
	return `
		e.entry_id, e.tenant_id, e.reference, e.description, e.transaction_type, e.status,
		e.sequence_no, e.entry_date, e.posted_at, e.reversal_of_entry_id, e.reversed_by_entry_id,
		e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
	`
}
