package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckKind is the closed enumeration of validation checks. New checks are
// added here so every dispatch site can be handled exhaustively.
type CheckKind string

const (
	CheckAccountingEquation CheckKind = "ACCOUNTING_EQUATION"
	CheckTrialBalance       CheckKind = "TRIAL_BALANCE"
	CheckIncomeStatement    CheckKind = "INCOME_STATEMENT"
	CheckCurrencyConversion CheckKind = "CURRENCY_CONVERSION"
)

// AllCheckKinds lists every check the validation engine runs in a full suite.
var AllCheckKinds = []CheckKind{
	CheckAccountingEquation,
	CheckTrialBalance,
	CheckIncomeStatement,
	CheckCurrencyConversion,
}

// CheckStatus is the outcome of a single validation check.
type CheckStatus string

const (
	CheckPass CheckStatus = "PASS"
	CheckFail CheckStatus = "FAIL"
)

// ValidationResult is an append-only audit record produced by the validation
// engine. A FAIL result carries the exact discrepancy; it is recorded, never
// auto-corrected.
type ValidationResult struct {
	ResultID    string          `json:"resultID"` // Primary Key (UUID)
	TenantID    string          `json:"tenantID"`
	RunID       string          `json:"runID"` // FK -> validation_runs.run_id
	Check       CheckKind       `json:"check"`
	Status      CheckStatus     `json:"status"`
	Expected    decimal.Decimal `json:"expected"`
	Actual      decimal.Decimal `json:"actual"`
	Discrepancy decimal.Decimal `json:"discrepancy"`
	Details     string          `json:"details"`
	EntityRefs  []string        `json:"entityRefs"` // Affected entity ids, if any
	CheckedAt   time.Time       `json:"checkedAt"`
}

// Failed reports whether the result is a FAIL.
func (r ValidationResult) Failed() bool {
	return r.Status == CheckFail
}

// RunStatus is the state of a per-tenant validation run.
type RunStatus string

const (
	RunScheduled RunStatus = "SCHEDULED"
	RunRunning   RunStatus = "RUNNING"
	RunCompleted RunStatus = "COMPLETED"
	RunFailed    RunStatus = "FAILED"
)

// ValidationRun tracks one scheduler pass over one tenant. The lease expiry
// lets a crashed worker's lock be reclaimed.
type ValidationRun struct {
	RunID       string     `json:"runID"` // Primary Key (UUID)
	TenantID    string     `json:"tenantID"`
	Status      RunStatus  `json:"status"`
	Attempt     int        `json:"attempt"`
	StartedAt   time.Time  `json:"startedAt"`
	FinishedAt  *time.Time `json:"finishedAt"`
	LeaseExpiry time.Time  `json:"leaseExpiry"`
	FailureNote string     `json:"failureNote"`
}
