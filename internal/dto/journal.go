package dto

import (
	"time"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one line of a draft entry. Exactly one of debit/credit
// must be strictly positive; the engine rejects malformed lines at posting.
type EntryLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	Memo         string          `json:"memo"`
}

// CreateEntryRequest carries a new draft entry with its lines.
type CreateEntryRequest struct {
	Reference       string             `json:"reference" binding:"required"`
	Description     string             `json:"description" binding:"required"`
	TransactionType string             `json:"transactionType"`
	EntryDate       time.Time          `json:"entryDate" binding:"required"`
	Lines           []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateEntryRequest replaces a draft's mutable fields and lines.
type UpdateEntryRequest struct {
	Description *string            `json:"description"`
	EntryDate   *time.Time         `json:"entryDate"`
	Lines       []EntryLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// TemplateEntryRequest asks the engine for a pre-populated draft of a common
// transaction shape.
type TemplateEntryRequest struct {
	Template       string          `json:"template" binding:"required,oneof=SALE PURCHASE PAYMENT RECEIPT TRANSFER ADJUSTMENT"`
	Reference      string          `json:"reference" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	EntryDate      time.Time       `json:"entryDate" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,len=3"`
	DebitAccountID string          `json:"debitAccountID" binding:"required"`
	CreditAccount  string          `json:"creditAccountID" binding:"required"`
}

// EntryLineResponse is the outward representation of a journal line.
type EntryLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	Memo         string          `json:"memo,omitempty"`
}

// EntryResponse is the outward representation of a journal entry.
type EntryResponse struct {
	EntryID           string              `json:"entryID"`
	Reference         string              `json:"reference"`
	Description       string              `json:"description"`
	TransactionType   string              `json:"transactionType"`
	Status            string              `json:"status"`
	SequenceNo        int64               `json:"sequenceNo,omitempty"`
	EntryDate         time.Time           `json:"entryDate"`
	PostedAt          *time.Time          `json:"postedAt,omitempty"`
	ReversalOfEntryID *string             `json:"reversalOfEntryID,omitempty"`
	ReversedByEntryID *string             `json:"reversedByEntryID,omitempty"`
	Lines             []EntryLineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CreatedBy         string              `json:"createdBy"`
}

// ListEntriesResponse is a page of entries plus the next pagination token.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.JournalEntry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = EntryLineResponse{
			LineID:       l.LineID,
			AccountID:    l.AccountID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			CurrencyCode: l.CurrencyCode,
			Memo:         l.Memo,
		}
	}
	return EntryResponse{
		EntryID:           e.EntryID,
		Reference:         e.Reference,
		Description:       e.Description,
		TransactionType:   string(e.TransactionType),
		Status:            string(e.Status),
		SequenceNo:        e.SequenceNo,
		EntryDate:         e.EntryDate,
		PostedAt:          e.PostedAt,
		ReversalOfEntryID: e.ReversalOfEntryID,
		ReversedByEntryID: e.ReversedByEntryID,
		Lines:             lines,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
