package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRate is a conversion rate between two currencies, effective from a date.
// Precision is the number of decimal places the rate is stated at; converted
// amounts are compared at this precision.
type FxRate struct {
	RateID           string          `json:"rateID"` // Primary Key (UUID)
	BaseCurrencyCode string          `json:"baseCurrencyCode"`
	QuoteCurrency    string          `json:"quoteCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Precision        int32           `json:"precision"`
	EffectiveFrom    time.Time       `json:"effectiveFrom"`
	AuditFields
}

// Convert converts an amount in the base currency to the quote currency,
// rounded to the rate's stated precision.
func (r FxRate) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Rate).Round(r.Precision)
}
