package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountSubtype refines the account type for statement grouping.
type AccountSubtype string

const (
	CurrentAsset       AccountSubtype = "CURRENT_ASSET"
	FixedAsset         AccountSubtype = "FIXED_ASSET"
	CurrentLiability   AccountSubtype = "CURRENT_LIABILITY"
	LongTermLiability  AccountSubtype = "LONG_TERM_LIABILITY"
	ContributedCapital AccountSubtype = "CONTRIBUTED_CAPITAL"
	RetainedEarnings   AccountSubtype = "RETAINED_EARNINGS"
	OperatingRevenue   AccountSubtype = "OPERATING_REVENUE"
	OtherRevenue       AccountSubtype = "OTHER_REVENUE"
	OperatingExpense   AccountSubtype = "OPERATING_EXPENSE"
	OtherExpense       AccountSubtype = "OTHER_EXPENSE"
)

// subtypesByType enumerates the valid subtypes for each account type.
var subtypesByType = map[AccountType][]AccountSubtype{
	Asset:     {CurrentAsset, FixedAsset},
	Liability: {CurrentLiability, LongTermLiability},
	Equity:    {ContributedCapital, RetainedEarnings},
	Revenue:   {OperatingRevenue, OtherRevenue},
	Expense:   {OperatingExpense, OtherExpense},
}

// ValidSubtype reports whether subtype is a valid refinement of accountType.
func ValidSubtype(accountType AccountType, subtype AccountSubtype) bool {
	for _, s := range subtypesByType[accountType] {
		if s == subtype {
			return true
		}
	}
	return false
}

// Account represents a financial account in a tenant's chart of accounts.
// Accounts are keyed by (tenant, code) uniquely and are soft-deactivated,
// never deleted once referenced by a posted entry.
type Account struct {
	AccountID      string         `json:"accountID"`   // Primary Key (UUID)
	TenantID       string         `json:"tenantID"`    // FK -> tenants.tenant_id
	Code           string         `json:"code"`        // Unique per tenant, e.g. "1000"
	Name           string         `json:"name"`        // User-defined name
	AccountType    AccountType    `json:"accountType"` // ASSET, LIABILITY, etc.
	AccountSubtype AccountSubtype `json:"accountSubtype"`
	CurrencyCode   string         `json:"currencyCode"`
	Description    string         `json:"description"` // Nullable user description
	IsActive       bool           `json:"isActive"`    // Deactivation only blocks future postings
	Version        int64          `json:"version"`     // Incremented on every mutation, mirrored in the version log
	AuditFields
}
