package domain

import "time"

// AuditAction names the operation an audit record captures.
type AuditAction string

const (
	AuditEntryPosted       AuditAction = "ENTRY_POSTED"
	AuditEntryReversed     AuditAction = "ENTRY_REVERSED"
	AuditAccountCreated    AuditAction = "ACCOUNT_CREATED"
	AuditAccountUpdated    AuditAction = "ACCOUNT_UPDATED"
	AuditAccountDeactivate AuditAction = "ACCOUNT_DEACTIVATED"
	AuditTenantUpdated     AuditAction = "TENANT_UPDATED"
)

// AuditRecord is an immutable, append-only record of a state-changing
// operation, consumed by external audit-trail tooling.
type AuditRecord struct {
	RecordID   string      `json:"recordID"` // Primary Key (UUID)
	TenantID   string      `json:"tenantID"`
	Actor      string      `json:"actor"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entityType"`
	EntityID   string      `json:"entityID"`
	Snapshot   []byte      `json:"snapshot"` // JSON snapshot of the entity at action time
	OccurredAt time.Time   `json:"occurredAt"`
}
