package mapping

import (
	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant.
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:             d.TenantID,
		Name:                 d.Name,
		BaseCurrencyCode:     d.BaseCurrencyCode,
		FiscalYearStartMonth: d.FiscalYearStartMonth,
		FiscalYearStartDay:   d.FiscalYearStartDay,
		Timezone:             d.Timezone,
		CountryCode:          d.CountryCode,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant.
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:             m.TenantID,
		Name:                 m.Name,
		BaseCurrencyCode:     m.BaseCurrencyCode,
		FiscalYearStartMonth: m.FiscalYearStartMonth,
		FiscalYearStartDay:   m.FiscalYearStartDay,
		Timezone:             m.Timezone,
		CountryCode:          m.CountryCode,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
