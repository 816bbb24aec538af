package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a row in the journal_entries table.
type JournalEntry struct {
	EntryID           string     `json:"entryID"`
	TenantID          string     `json:"tenantID"`
	Reference         string     `json:"reference"`
	Description       string     `json:"description"`
	TransactionType   string     `json:"transactionType"`
	Status            string     `json:"status"`
	SequenceNo        int64      `json:"sequenceNo"`
	EntryDate         time.Time  `json:"entryDate"`
	PostedAt          *time.Time `json:"postedAt"`
	ReversalOfEntryID *string    `json:"reversalOfEntryID"`
	ReversedByEntryID *string    `json:"reversedByEntryID"`
	AuditFields
}

// JournalLine represents a row in the journal_entry_lines table.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	TenantID     string          `json:"tenantID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	Memo         string          `json:"memo"`
}
