package services

import (
	"context"
	"time"

	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the thin orchestration layer over the journal entry
// engine and the reporting queries.
type LedgerSvcFacade interface {
	// PostEntry posts a draft through the journal entry engine.
	PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)

	// GetAccountBalance computes an account's balance from posted lines up to
	// asOf. Read-only; consistent with the balance sheet for the same date.
	GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)

	// ListEntries retrieves a filtered, paginated list of the tenant's entries.
	ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}
