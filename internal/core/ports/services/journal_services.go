package services

import (
	"context"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/dto"
)

// JournalSvcFacade defines the journal entry engine: draft construction,
// the posting protocol, and reversals.
type JournalSvcFacade interface {
	// CreateDraft constructs a draft entry from the request. The draft is
	// shape-checked (line count, well-formed lines) but not balance-enforced
	// until posting.
	CreateDraft(ctx context.Context, req dto.CreateEntryRequest, actor string) (*domain.JournalEntry, error)

	// CreateFromTemplate produces a pre-populated draft for a common
	// transaction shape. Templates are balanced by construction.
	CreateFromTemplate(ctx context.Context, req dto.TemplateEntryRequest, actor string) (*domain.JournalEntry, error)

	// UpdateDraft replaces a draft's fields and lines. Fails with
	// apperrors.ErrInvalidStateTransition for posted or reversed entries.
	UpdateDraft(ctx context.Context, entryID string, req dto.UpdateEntryRequest, actor string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// PostEntry runs the posting protocol against a draft. Posting is
	// idempotent on entry id: re-posting an already-posted entry returns the
	// stored posted state without creating a duplicate.
	PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)

	// ReverseEntry creates and posts the mirror entry of a posted entry, marks
	// the original REVERSED, and links the two. The only sanctioned way to
	// undo a posted entry.
	ReverseEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)
}
