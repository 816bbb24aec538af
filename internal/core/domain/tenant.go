package domain

// Tenant represents an isolated organization whose financial data must never
// be visible to or combined with another tenant's.
type Tenant struct {
	TenantID             string `json:"tenantID"`             // Primary Key (UUID)
	Name                 string `json:"name"`                 // Display name
	BaseCurrencyCode     string `json:"baseCurrencyCode"`     // ISO-4217, e.g. "USD"
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth"` // 1..12
	FiscalYearStartDay   int    `json:"fiscalYearStartDay"`   // 1..31
	Timezone             string `json:"timezone"`             // IANA name, e.g. "Europe/Amsterdam"
	CountryCode          string `json:"countryCode"`          // ISO-3166 alpha-2
	IsActive             bool   `json:"isActive"`             // Tenants are soft-deactivated, never deleted
	AuditFields
}
