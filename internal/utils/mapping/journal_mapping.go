package mapping

import (
	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to its model form.
// Lines are mapped separately; the entry row does not carry them.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:           d.EntryID,
		TenantID:          d.TenantID,
		Reference:         d.Reference,
		Description:       d.Description,
		TransactionType:   string(d.TransactionType),
		Status:            string(d.Status),
		SequenceNo:        d.SequenceNo,
		EntryDate:         d.EntryDate,
		PostedAt:          d.PostedAt,
		ReversalOfEntryID: d.ReversalOfEntryID,
		ReversedByEntryID: d.ReversedByEntryID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to its domain form,
// attaching the given lines.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:           m.EntryID,
		TenantID:          m.TenantID,
		Reference:         m.Reference,
		Description:       m.Description,
		TransactionType:   domain.TransactionType(m.TransactionType),
		Status:            domain.EntryStatus(m.Status),
		SequenceNo:        m.SequenceNo,
		EntryDate:         m.EntryDate,
		PostedAt:          m.PostedAt,
		ReversalOfEntryID: m.ReversalOfEntryID,
		ReversedByEntryID: m.ReversedByEntryID,
		Lines:             ToDomainJournalLineSlice(lines),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to its model form.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		TenantID:     d.TenantID,
		AccountID:    d.AccountID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		CurrencyCode: d.CurrencyCode,
		Memo:         d.Memo,
	}
}

// ToDomainJournalLine converts a model JournalLine to its domain form.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		TenantID:     m.TenantID,
		AccountID:    m.AccountID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		CurrencyCode: m.CurrencyCode,
		Memo:         m.Memo,
	}
}

// ToDomainJournalLineSlice converts a slice of model lines to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
