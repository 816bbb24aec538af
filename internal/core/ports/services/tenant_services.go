package services

import (
	"context"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/dto"
)

// TenantSvcFacade defines tenant provisioning and configuration operations.
type TenantSvcFacade interface {
	// CreateTenant provisions a new tenant.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, actor string) (*domain.Tenant, error)

	// GetTenantByID retrieves a tenant.
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListActiveTenants lists every active tenant. Scheduler use only.
	ListActiveTenants(ctx context.Context) ([]domain.Tenant, error)

	// UpdateTenantConfig updates a tenant's mutable configuration.
	UpdateTenantConfig(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, actor string) (*domain.Tenant, error)

	// DeactivateTenant soft-deactivates a tenant. Tenants are never hard-deleted.
	DeactivateTenant(ctx context.Context, tenantID string, actor string) error
}
