package mapping

import (
	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/models"
)

// ToModelAuditRecord converts a domain AuditRecord to its model form.
func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		RecordID:   d.RecordID,
		TenantID:   d.TenantID,
		Actor:      d.Actor,
		Action:     string(d.Action),
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		Snapshot:   d.Snapshot,
		OccurredAt: d.OccurredAt,
	}
}
