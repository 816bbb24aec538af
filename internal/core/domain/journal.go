package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// CanTransition reports whether an entry may move from its current status to
// target. Posted entries only ever become reversed; reversed entries are
// terminal; drafts may only become posted.
func (s EntryStatus) CanTransition(target EntryStatus) bool {
	switch s {
	case Draft:
		return target == Posted
	case Posted:
		return target == Reversed
	default:
		return false
	}
}

// TransactionType classifies the business shape of an entry.
type TransactionType string

const (
	TxnSale       TransactionType = "SALE"
	TxnPurchase   TransactionType = "PURCHASE"
	TxnPayment    TransactionType = "PAYMENT"
	TxnReceipt    TransactionType = "RECEIPT"
	TxnTransfer   TransactionType = "TRANSFER"
	TxnAdjustment TransactionType = "ADJUSTMENT"
	TxnReversal   TransactionType = "REVERSAL"
	TxnGeneral    TransactionType = "GENERAL"
)

// JournalEntry represents a single, balanced financial event composed of two
// or more lines. Once posted, all scalar fields and lines are immutable; the
// only permitted mutation is the transition to REVERSED, accompanied by a new
// reversing entry.
type JournalEntry struct {
	EntryID           string          `json:"entryID"`   // Primary Key (UUID)
	TenantID          string          `json:"tenantID"`  // FK -> tenants.tenant_id
	Reference         string          `json:"reference"` // Unique per tenant
	Description       string          `json:"description"`
	TransactionType   TransactionType `json:"transactionType"`
	Status            EntryStatus     `json:"status"`
	SequenceNo        int64           `json:"sequenceNo"` // Per-tenant monotonic, assigned at posting
	EntryDate         time.Time       `json:"entryDate"`  // Date the event occurred
	PostedAt          *time.Time      `json:"postedAt"`   // Nil until posted
	ReversalOfEntryID *string         `json:"reversalOfEntryID"`
	ReversedByEntryID *string         `json:"reversedByEntryID"`
	Lines             []JournalLine   `json:"lines"`
	AuditFields
}

// JournalLine represents a single line within an entry, affecting one account.
// Exactly one of Debit or Credit is strictly positive; the other is zero.
type JournalLine struct {
	LineID       string          `json:"lineID"`  // Primary Key (UUID)
	EntryID      string          `json:"entryID"` // FK -> journal_entries.entry_id
	TenantID     string          `json:"tenantID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	Memo         string          `json:"memo"` // Nullable
}

// IsDebit reports whether the line carries its amount on the debit side.
func (l JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount returns the positive amount carried by the line, whichever side it is on.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// WellFormed reports whether exactly one of debit/credit is strictly positive
// and the other exactly zero.
func (l JournalLine) WellFormed() bool {
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return false
	}
	return l.Debit.IsPositive() != l.Credit.IsPositive()
}

// CurrencyTotals sums debits and credits per currency across the entry's lines.
type CurrencyTotals struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// TotalsByCurrency groups the entry's lines by currency and sums each side.
func (e *JournalEntry) TotalsByCurrency() map[string]CurrencyTotals {
	totals := make(map[string]CurrencyTotals)
	for _, line := range e.Lines {
		t := totals[line.CurrencyCode]
		t.Debits = t.Debits.Add(line.Debit)
		t.Credits = t.Credits.Add(line.Credit)
		totals[line.CurrencyCode] = t
	}
	return totals
}

// MixedCurrency reports whether the entry carries lines in more than one currency.
func (e *JournalEntry) MixedCurrency() bool {
	return len(e.TotalsByCurrency()) > 1
}
