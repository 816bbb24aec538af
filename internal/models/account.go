package models

import "time"

// Account represents a row in the accounts table.
type Account struct {
	AccountID      string `json:"accountID"`
	TenantID       string `json:"tenantID"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	AccountType    string `json:"accountType"`
	AccountSubtype string `json:"accountSubtype"`
	CurrencyCode   string `json:"currencyCode"`
	Description    string `json:"description"`
	IsActive       bool   `json:"isActive"`
	Version        int64  `json:"version"`
	AuditFields
}

// AccountVersion is one row of the account version log. A new row is appended
// for every account mutation, preserving prior states for audit.
type AccountVersion struct {
	AccountID  string    `json:"accountID"`
	Version    int64     `json:"version"`
	Snapshot   []byte    `json:"snapshot"` // JSON of the account at this version
	RecordedAt time.Time `json:"recordedAt"`
	RecordedBy string    `json:"recordedBy"`
}
