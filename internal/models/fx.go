package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRate represents a row in the fx_rates table.
type FxRate struct {
	RateID           string          `json:"rateID"`
	BaseCurrencyCode string          `json:"baseCurrencyCode"`
	QuoteCurrency    string          `json:"quoteCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Precision        int32           `json:"precision"`
	EffectiveFrom    time.Time       `json:"effectiveFrom"`
	AuditFields
}
