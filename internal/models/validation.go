package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidationResult represents a row in the validation_results table.
type ValidationResult struct {
	ResultID    string          `json:"resultID"`
	TenantID    string          `json:"tenantID"`
	RunID       string          `json:"runID"`
	CheckKind   string          `json:"checkKind"`
	Status      string          `json:"status"`
	Expected    decimal.Decimal `json:"expected"`
	Actual      decimal.Decimal `json:"actual"`
	Discrepancy decimal.Decimal `json:"discrepancy"`
	Details     string          `json:"details"`
	EntityRefs  []string        `json:"entityRefs"`
	CheckedAt   time.Time       `json:"checkedAt"`
}

// ValidationRun represents a row in the validation_runs table.
type ValidationRun struct {
	RunID       string     `json:"runID"`
	TenantID    string     `json:"tenantID"`
	Status      string     `json:"status"`
	Attempt     int        `json:"attempt"`
	StartedAt   time.Time  `json:"startedAt"`
	FinishedAt  *time.Time `json:"finishedAt"`
	LeaseExpiry time.Time  `json:"leaseExpiry"`
	FailureNote string     `json:"failureNote"`
}
