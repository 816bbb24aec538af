package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/dto"
)

// accountService manages the per-tenant chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	auditRepo   portsrepo.AuditRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, auditRepo portsrepo.AuditRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, auditRepo: auditRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	accountType := domain.AccountType(req.AccountType)
	subtype := domain.AccountSubtype(req.AccountSubtype)
	if !domain.ValidSubtype(accountType, subtype) {
		return nil, fmt.Errorf("%w: subtype %s is not valid for account type %s", apperrors.ErrValidation, subtype, accountType)
	}

	// Codes are unique per tenant, not globally: two tenants may both own
	// an account "1000".
	existing, err := s.accountRepo.FindAccountByCode(ctx, tenantID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code uniqueness", "code", req.Code)
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		TenantID:       tenantID,
		Code:           req.Code,
		Name:           req.Name,
		AccountType:    accountType,
		AccountSubtype: subtype,
		CurrencyCode:   req.CurrencyCode,
		Description:    req.Description,
		IsActive:       true,
		Version:        1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", "code", req.Code)
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.appendAudit(ctx, account, actor, domain.AuditAccountCreated, now)
	s.LogInfo(ctx, "Account created", "account_id", account.AccountID, "code", account.Code)
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.TenantID != tenantID {
		s.LogWarn(ctx, "Cross-tenant account access attempt", "account_id", accountID, "account_tenant", account.TenantID)
		return nil, apperrors.ErrCrossTenant
	}
	return account, nil
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	for id, acc := range accounts {
		if acc.TenantID != tenantID {
			s.LogWarn(ctx, "Cross-tenant account access attempt", "account_id", id, "account_tenant", acc.TenantID)
			return nil, apperrors.ErrCrossTenant
		}
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, nextToken *string) ([]domain.Account, *string, error) {
	tenantID, err := s.TenantID(ctx)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	accounts, token, err := s.accountRepo.ListAccounts(ctx, tenantID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, token, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if !updated {
		return account, nil
	}

	now := time.Now().UTC()
	account.Version++
	account.LastUpdatedAt = now
	account.LastUpdatedBy = actor

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", "account_id", accountID)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.appendAudit(ctx, *account, actor, domain.AuditAccountUpdated, now)
	s.LogInfo(ctx, "Account updated", "account_id", accountID)
	return account, nil
}

// DeactivateAccount blocks future postings against the account. It never
// invalidates history: entries already posted keep referencing the account.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, actor string) error {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return nil
	}

	now := time.Now().UTC()
	account.IsActive = false
	account.Version++
	account.LastUpdatedAt = now
	account.LastUpdatedBy = actor

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", "account_id", accountID)
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.appendAudit(ctx, *account, actor, domain.AuditAccountDeactivate, now)
	s.LogInfo(ctx, "Account deactivated", "account_id", accountID)
	return nil
}

func (s *accountService) appendAudit(ctx context.Context, account domain.Account, actor string, action domain.AuditAction, at time.Time) {
	snapshot, _ := json.Marshal(account)
	record := domain.AuditRecord{
		RecordID:   uuid.NewString(),
		TenantID:   account.TenantID,
		Actor:      actor,
		Action:     action,
		EntityType: "account",
		EntityID:   account.AccountID,
		Snapshot:   snapshot,
		OccurredAt: at,
	}
	if err := s.auditRepo.AppendRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to append audit record", "account_id", account.AccountID)
	}
}
