package repositories

import (
	"context"
	"time"

	"github.com/finledger/finledger/internal/core/domain"
)

// ValidationResultWriter persists validation results. Results are append-only.
type ValidationResultWriter interface {
	// SaveResults appends a batch of validation results.
	SaveResults(ctx context.Context, results []domain.ValidationResult) error
}

// ValidationResultReader reads the validation result history.
type ValidationResultReader interface {
	// ListResults retrieves a token-paginated result history, newest first.
	ListResults(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ValidationResult, *string, error)
}

// ValidationRunLocker coordinates scheduler runs so two workers never validate
// the same tenant concurrently.
type ValidationRunLocker interface {
	// AcquireRunLock attempts to claim the per-tenant run lock. It succeeds if
	// no run is in flight or the previous holder's lease has expired. Returns
	// false without error when the lock is held.
	AcquireRunLock(ctx context.Context, run domain.ValidationRun) (bool, error)

	// FinishRun releases the lock, recording the terminal status and note.
	FinishRun(ctx context.Context, runID string, status domain.RunStatus, finishedAt time.Time, note string) error
}

// ValidationRepositoryFacade combines all validation repository interfaces.
type ValidationRepositoryFacade interface {
	ValidationResultWriter
	ValidationResultReader
	ValidationRunLocker
}

// FxRateRepository reads currency conversion rates.
type FxRateRepository interface {
	// FindRate retrieves the rate effective for the given pair at the given
	// time, or apperrors.ErrNotFound when no rate is loaded.
	FindRate(ctx context.Context, baseCurrency, quoteCurrency string, at time.Time) (*domain.FxRate, error)

	// SaveRate persists a new rate row.
	SaveRate(ctx context.Context, rate domain.FxRate) error
}

// AuditRepository is the append-only audit-log sink consumed by external
// audit-trail tooling.
type AuditRepository interface {
	// AppendRecord appends a single audit record.
	AppendRecord(ctx context.Context, record domain.AuditRecord) error
}
