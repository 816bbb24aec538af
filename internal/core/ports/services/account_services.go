package services

import (
	"context"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/dto"
)

// AccountSvcFacade defines chart-of-accounts operations. Every operation is
// scoped to the tenant bound to the context; access to another tenant's
// accounts fails with apperrors.ErrCrossTenant.
type AccountSvcFacade interface {
	// CreateAccount adds an account to the tenant's chart of accounts.
	// Codes are unique per tenant, not globally.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts keyed by id.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a page of the tenant's accounts.
	ListAccounts(ctx context.Context, limit int, nextToken *string) ([]domain.Account, *string, error)

	// UpdateAccount updates an account's name and description.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error)

	// DeactivateAccount blocks future postings against the account. History is
	// never invalidated; posted entries keep referencing it.
	DeactivateAccount(ctx context.Context, accountID string, actor string) error
}
