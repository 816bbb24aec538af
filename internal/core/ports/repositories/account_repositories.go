package repositories

import (
	"context"

	"github.com/finledger/finledger/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier. Lookups
	// are by id alone so the service layer can tell a cross-tenant access
	// attempt apart from a missing account and log it.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by id. Like
	// FindAccountByID, results are not tenant-filtered; ownership is checked
	// by the service layer.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByCode retrieves an account by its per-tenant unique code.
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)

	// ListAccounts retrieves a page of the tenant's accounts ordered by code.
	ListAccounts(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Account, *string, error)
}

// AccountWriter defines write operations for chart-of-accounts data. Every
// mutation appends a row to the account version log.
type AccountWriter interface {
	// SaveAccount persists a new account and its initial version.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists a mutation of an existing account and appends the
	// next version to the version log.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
