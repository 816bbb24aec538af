package dto

import (
	"time"

	"github.com/finledger/finledger/internal/core/domain"
)

// CreateTenantRequest carries the data needed to provision a tenant.
type CreateTenantRequest struct {
	Name                 string `json:"name" binding:"required"`
	BaseCurrencyCode     string `json:"baseCurrencyCode" binding:"required,len=3"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth" binding:"required,min=1,max=12"`
	FiscalYearStartDay   int    `json:"fiscalYearStartDay" binding:"required,min=1,max=31"`
	Timezone             string `json:"timezone" binding:"required"`
	CountryCode          string `json:"countryCode" binding:"required,len=2"`
}

// UpdateTenantRequest carries a partial tenant configuration update.
type UpdateTenantRequest struct {
	Name                 *string `json:"name"`
	BaseCurrencyCode     *string `json:"baseCurrencyCode" binding:"omitempty,len=3"`
	FiscalYearStartMonth *int    `json:"fiscalYearStartMonth" binding:"omitempty,min=1,max=12"`
	FiscalYearStartDay   *int    `json:"fiscalYearStartDay" binding:"omitempty,min=1,max=31"`
	Timezone             *string `json:"timezone"`
	CountryCode          *string `json:"countryCode" binding:"omitempty,len=2"`
}

// TenantResponse is the outward representation of a tenant.
type TenantResponse struct {
	TenantID             string    `json:"tenantID"`
	Name                 string    `json:"name"`
	BaseCurrencyCode     string    `json:"baseCurrencyCode"`
	FiscalYearStartMonth int       `json:"fiscalYearStartMonth"`
	FiscalYearStartDay   int       `json:"fiscalYearStartDay"`
	Timezone             string    `json:"timezone"`
	CountryCode          string    `json:"countryCode"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ToTenantResponse converts a domain.Tenant to its response DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:             t.TenantID,
		Name:                 t.Name,
		BaseCurrencyCode:     t.BaseCurrencyCode,
		FiscalYearStartMonth: t.FiscalYearStartMonth,
		FiscalYearStartDay:   t.FiscalYearStartDay,
		Timezone:             t.Timezone,
		CountryCode:          t.CountryCode,
		IsActive:             t.IsActive,
		CreatedAt:            t.CreatedAt,
	}
}
