package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrUnbalancedEntry indicates a journal entry whose debits and credits do not match.
// Callers should wrap it with the computed discrepancy so the draft can be corrected.
var ErrUnbalancedEntry = errors.New("journal entry debits do not equal credits")

// ErrMalformedLine indicates a journal line that does not have exactly one of
// debit or credit strictly positive.
var ErrMalformedLine = errors.New("journal line must have exactly one of debit or credit set")

// ErrInvalidStateTransition indicates an attempt to move an entry through a
// transition its current status does not permit, including any mutation of a
// posted entry.
var ErrInvalidStateTransition = errors.New("invalid journal entry state transition")

// ErrCrossTenant indicates an access attempt on an entity owned by a different
// tenant than the one bound to the context. Surfaced and logged as a potential
// security event.
var ErrCrossTenant = errors.New("cross-tenant access denied")

// ErrNoTenant indicates that no tenant is bound to the current context.
var ErrNoTenant = errors.New("no tenant bound to context")

// ErrAccountInactive indicates a posting against a deactivated account.
var ErrAccountInactive = errors.New("account is inactive")

// ErrPostingTimedOut indicates a posting exceeded the configured timeout and
// the underlying transaction was aborted. Retrying with the same draft is safe.
var ErrPostingTimedOut = errors.New("posting timed out")

// ErrIntegrity indicates a discrepancy discovered on already-persisted data.
// It is never auto-repaired; it is recorded and escalated for human review.
var ErrIntegrity = errors.New("ledger integrity violation")

// AppError wraps an underlying error with an HTTP-ish status code and a
// human-readable message. Used mainly at the repository boundary.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
