package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finledger/finledger/internal/core/domain"
)

func TestEntryStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.EntryStatus
		to      domain.EntryStatus
		allowed bool
	}{
		{"draft to posted", domain.Draft, domain.Posted, true},
		{"posted to reversed", domain.Posted, domain.Reversed, true},
		{"draft to reversed", domain.Draft, domain.Reversed, false},
		{"posted to draft", domain.Posted, domain.Draft, false},
		{"posted to posted", domain.Posted, domain.Posted, false},
		{"reversed is terminal", domain.Reversed, domain.Posted, false},
		{"reversed to draft", domain.Reversed, domain.Draft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestJournalLineWellFormed(t *testing.T) {
	tests := []struct {
		name   string
		debit  decimal.Decimal
		credit decimal.Decimal
		want   bool
	}{
		{"debit only", decimal.NewFromInt(100), decimal.Zero, true},
		{"credit only", decimal.Zero, decimal.NewFromInt(100), true},
		{"both sides set", decimal.NewFromInt(100), decimal.NewFromInt(100), false},
		{"both zero", decimal.Zero, decimal.Zero, false},
		{"negative debit", decimal.NewFromInt(-1), decimal.Zero, false},
		{"negative credit", decimal.Zero, decimal.NewFromInt(-1), false},
		{"fractional debit", decimal.RequireFromString("0.01"), decimal.Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.JournalLine{Debit: tt.debit, Credit: tt.credit}
			assert.Equal(t, tt.want, line.WellFormed())
		})
	}
}

func TestJournalLineAmount(t *testing.T) {
	debitLine := domain.JournalLine{Debit: decimal.NewFromInt(75)}
	assert.True(t, debitLine.IsDebit())
	assert.True(t, debitLine.Amount().Equal(decimal.NewFromInt(75)))

	creditLine := domain.JournalLine{Credit: decimal.NewFromInt(25)}
	assert.False(t, creditLine.IsDebit())
	assert.True(t, creditLine.Amount().Equal(decimal.NewFromInt(25)))
}

func TestTotalsByCurrency(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{Debit: decimal.NewFromInt(100), CurrencyCode: "USD"},
			{Credit: decimal.NewFromInt(60), CurrencyCode: "USD"},
			{Credit: decimal.NewFromInt(40), CurrencyCode: "USD"},
			{Debit: decimal.NewFromInt(50), CurrencyCode: "EUR"},
			{Credit: decimal.NewFromInt(50), CurrencyCode: "EUR"},
		},
	}

	totals := entry.TotalsByCurrency()

	assert.Len(t, totals, 2)
	assert.True(t, totals["USD"].Debits.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals["USD"].Credits.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals["EUR"].Debits.Equal(decimal.NewFromInt(50)))
	assert.True(t, totals["EUR"].Credits.Equal(decimal.NewFromInt(50)))
}

func TestMixedCurrency(t *testing.T) {
	single := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{Debit: decimal.NewFromInt(10), CurrencyCode: "USD"},
			{Credit: decimal.NewFromInt(10), CurrencyCode: "USD"},
		},
	}
	assert.False(t, single.MixedCurrency())

	mixed := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{Debit: decimal.NewFromInt(10), CurrencyCode: "USD"},
			{Credit: decimal.NewFromInt(9), CurrencyCode: "EUR"},
		},
	}
	assert.True(t, mixed.MixedCurrency())
}
