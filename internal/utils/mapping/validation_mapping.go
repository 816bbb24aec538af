package mapping

import (
	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/models"
)

// ToModelValidationResult converts a domain ValidationResult to its model form.
func ToModelValidationResult(d domain.ValidationResult) models.ValidationResult {
	return models.ValidationResult{
		ResultID:    d.ResultID,
		TenantID:    d.TenantID,
		RunID:       d.RunID,
		CheckKind:   string(d.Check),
		Status:      string(d.Status),
		Expected:    d.Expected,
		Actual:      d.Actual,
		Discrepancy: d.Discrepancy,
		Details:     d.Details,
		EntityRefs:  d.EntityRefs,
		CheckedAt:   d.CheckedAt,
	}
}

// ToDomainValidationResult converts a model ValidationResult to its domain form.
func ToDomainValidationResult(m models.ValidationResult) domain.ValidationResult {
	return domain.ValidationResult{
		ResultID:    m.ResultID,
		TenantID:    m.TenantID,
		RunID:       m.RunID,
		Check:       domain.CheckKind(m.CheckKind),
		Status:      domain.CheckStatus(m.Status),
		Expected:    m.Expected,
		Actual:      m.Actual,
		Discrepancy: m.Discrepancy,
		Details:     m.Details,
		EntityRefs:  m.EntityRefs,
		CheckedAt:   m.CheckedAt,
	}
}

// ToModelValidationRun converts a domain ValidationRun to its model form.
func ToModelValidationRun(d domain.ValidationRun) models.ValidationRun {
	return models.ValidationRun{
		RunID:       d.RunID,
		TenantID:    d.TenantID,
		Status:      string(d.Status),
		Attempt:     d.Attempt,
		StartedAt:   d.StartedAt,
		FinishedAt:  d.FinishedAt,
		LeaseExpiry: d.LeaseExpiry,
		FailureNote: d.FailureNote,
	}
}
