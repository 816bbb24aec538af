package models

// Tenant represents a row in the tenants table.
type Tenant struct {
	TenantID             string `json:"tenantID"`
	Name                 string `json:"name"`
	BaseCurrencyCode     string `json:"baseCurrencyCode"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth"`
	FiscalYearStartDay   int    `json:"fiscalYearStartDay"`
	Timezone             string `json:"timezone"`
	CountryCode          string `json:"countryCode"`
	IsActive             bool   `json:"isActive"`
	AuditFields
}
