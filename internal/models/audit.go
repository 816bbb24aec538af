package models

import "time"

// AuditRecord represents a row in the audit_records table. Rows are
// append-only; there is no update path.
type AuditRecord struct {
	RecordID   string    `json:"recordID"`
	TenantID   string    `json:"tenantID"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Snapshot   []byte    `json:"snapshot"`
	OccurredAt time.Time `json:"occurredAt"`
}
