package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/dto"
)

// tenantService manages tenant provisioning and configuration.
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
	auditRepo  portsrepo.AuditRepository
}

// NewTenantService creates a new TenantService.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, auditRepo portsrepo.AuditRepository) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo, auditRepo: auditRepo}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, actor string) (*domain.Tenant, error) {
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", apperrors.ErrValidation, req.Timezone)
	}

	now := time.Now().UTC()
	tenant := domain.Tenant{
		TenantID:             uuid.NewString(),
		Name:                 req.Name,
		BaseCurrencyCode:     req.BaseCurrencyCode,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		FiscalYearStartDay:   req.FiscalYearStartDay,
		Timezone:             req.Timezone,
		CountryCode:          req.CountryCode,
		IsActive:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant")
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	s.LogInfo(ctx, "Tenant provisioned", "tenant_id", tenant.TenantID)
	return &tenant, nil
}

func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	return tenant, nil
}

func (s *tenantService) ListActiveTenants(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListActiveTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tenants: %w", err)
	}
	return tenants, nil
}

func (s *tenantService) UpdateTenantConfig(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, actor string) (*domain.Tenant, error) {
	boundTenant, err := s.TenantID(ctx)
	if err != nil {
		return nil, err
	}
	if boundTenant != tenantID {
		s.LogWarn(ctx, "Cross-tenant configuration update attempt", "target_tenant", tenantID)
		return nil, apperrors.ErrCrossTenant
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.BaseCurrencyCode != nil {
		tenant.BaseCurrencyCode = *req.BaseCurrencyCode
	}
	if req.FiscalYearStartMonth != nil {
		tenant.FiscalYearStartMonth = *req.FiscalYearStartMonth
	}
	if req.FiscalYearStartDay != nil {
		tenant.FiscalYearStartDay = *req.FiscalYearStartDay
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", apperrors.ErrValidation, *req.Timezone)
		}
		tenant.Timezone = *req.Timezone
	}
	if req.CountryCode != nil {
		tenant.CountryCode = *req.CountryCode
	}

	now := time.Now().UTC()
	tenant.LastUpdatedAt = now
	tenant.LastUpdatedBy = actor

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		s.LogError(ctx, err, "Failed to update tenant", "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.appendAudit(ctx, tenant.TenantID, actor, domain.AuditTenantUpdated, "tenant", tenant.TenantID, now)
	s.LogInfo(ctx, "Tenant configuration updated", "tenant_id", tenantID)
	return tenant, nil
}

func (s *tenantService) DeactivateTenant(ctx context.Context, tenantID string, actor string) error {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	if !tenant.IsActive {
		return nil
	}

	now := time.Now().UTC()
	tenant.IsActive = false
	tenant.LastUpdatedAt = now
	tenant.LastUpdatedBy = actor

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		s.LogError(ctx, err, "Failed to deactivate tenant", "tenant_id", tenantID)
		return fmt.Errorf("failed to deactivate tenant: %w", err)
	}

	s.appendAudit(ctx, tenantID, actor, domain.AuditTenantUpdated, "tenant", tenantID, now)
	s.LogInfo(ctx, "Tenant deactivated", "tenant_id", tenantID)
	return nil
}

func (s *tenantService) appendAudit(ctx context.Context, tenantID, actor string, action domain.AuditAction, entityType, entityID string, at time.Time) {
	record := domain.AuditRecord{
		RecordID:   uuid.NewString(),
		TenantID:   tenantID,
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OccurredAt: at,
	}
	if err := s.auditRepo.AppendRecord(ctx, record); err != nil {
		// The audit sink is best-effort for config changes; posting and
		// reversal audits are written inside the posting transaction instead.
		s.LogError(ctx, err, "Failed to append audit record", "entity_id", entityID)
	}
}
