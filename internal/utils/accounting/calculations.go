package accounting

import (
	"fmt"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a journal line based on the account
// type it posts to. Used by both services and reporting queries so balance
// arithmetic stays consistent everywhere.
//
// DEBIT to ASSET/EXPENSE increases the balance; CREDIT decreases it.
// DEBIT to LIABILITY/EQUITY/REVENUE decreases the balance; CREDIT increases it.
func SignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return line.Debit.Sub(line.Credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return line.Credit.Sub(line.Debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q for account %s", accountType, line.AccountID)
	}
}

// EntryImbalance returns the per-currency difference sum(debits)-sum(credits)
// for every currency whose sides do not match exactly. An empty map means the
// entry is balanced.
func EntryImbalance(entry *domain.JournalEntry) map[string]decimal.Decimal {
	imbalances := make(map[string]decimal.Decimal)
	for currency, totals := range entry.TotalsByCurrency() {
		diff := totals.Debits.Sub(totals.Credits)
		if !diff.IsZero() {
			imbalances[currency] = diff
		}
	}
	return imbalances
}
