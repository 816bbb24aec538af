package repositories

import (
	"context"
	"time"

	"github.com/finledger/finledger/internal/core/domain"
)

// EntryFilter narrows ListEntries results.
type EntryFilter struct {
	Status    *domain.EntryStatus
	AccountID *string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// JournalReader defines read operations for journal entry data.
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines. Lookups are by id alone
	// so the service layer can tell a cross-tenant access attempt apart from a
	// missing entry and log it.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntryByReference retrieves an entry by its per-tenant unique reference.
	FindEntryByReference(ctx context.Context, tenantID, reference string) (*domain.JournalEntry, error)

	// ListEntries retrieves a filtered, token-paginated list of entries ordered
	// by (posted_at, sequence_no), drafts last.
	ListEntries(ctx context.Context, tenantID string, filter EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ListMixedCurrencyEntries retrieves posted entries in the period whose
	// lines span more than one currency, with lines loaded.
	ListMixedCurrencyEntries(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entry data. The
// repository enforces entry immutability: draft mutations guard on DRAFT
// status and posting guards on the DRAFT -> POSTED transition, so no code
// path can alter a posted entry.
type JournalWriter interface {
	// SaveDraft persists a new draft entry and its lines.
	SaveDraft(ctx context.Context, entry domain.JournalEntry) error

	// UpdateDraft replaces the scalar fields and lines of a draft entry.
	// Returns apperrors.ErrInvalidStateTransition if the entry is not a draft.
	UpdateDraft(ctx context.Context, entry domain.JournalEntry) error

	// MarkPosted transitions a draft to POSTED within a database transaction:
	// assigns the per-tenant sequence number, sets posted_at, and appends the
	// audit record, all-or-nothing. The assigned sequence number is returned.
	MarkPosted(ctx context.Context, tenantID, entryID string, postedAt time.Time, audit domain.AuditRecord) (int64, error)

	// SaveReversal atomically persists a reversing entry as POSTED (with its
	// own sequence number), transitions the original to REVERSED, links the
	// two, and appends the audit records. The reversal's assigned sequence
	// number is returned.
	SaveReversal(ctx context.Context, reversal domain.JournalEntry, originalEntryID string, audit []domain.AuditRecord) (int64, error)
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
