package dto

import (
	"time"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidationResultResponse is the outward representation of a validation result.
type ValidationResultResponse struct {
	ResultID    string          `json:"resultID"`
	RunID       string          `json:"runID"`
	Check       string          `json:"check"`
	Status      string          `json:"status"`
	Expected    decimal.Decimal `json:"expected"`
	Actual      decimal.Decimal `json:"actual"`
	Discrepancy decimal.Decimal `json:"discrepancy"`
	Details     string          `json:"details,omitempty"`
	EntityRefs  []string        `json:"entityRefs,omitempty"`
	CheckedAt   time.Time       `json:"checkedAt"`
}

// ListValidationResultsResponse is a page of results plus the next token.
type ListValidationResultsResponse struct {
	Results   []ValidationResultResponse `json:"results"`
	NextToken *string                    `json:"nextToken,omitempty"`
}

// ToValidationResultResponse converts a domain result.
func ToValidationResultResponse(r *domain.ValidationResult) ValidationResultResponse {
	return ValidationResultResponse{
		ResultID:    r.ResultID,
		RunID:       r.RunID,
		Check:       string(r.Check),
		Status:      string(r.Status),
		Expected:    r.Expected,
		Actual:      r.Actual,
		Discrepancy: r.Discrepancy,
		Details:     r.Details,
		EntityRefs:  r.EntityRefs,
		CheckedAt:   r.CheckedAt,
	}
}

// ToValidationResultResponses converts a slice of domain results.
func ToValidationResultResponses(results []domain.ValidationResult) []ValidationResultResponse {
	responses := make([]ValidationResultResponse, len(results))
	for i := range results {
		responses[i] = ToValidationResultResponse(&results[i])
	}
	return responses
}
