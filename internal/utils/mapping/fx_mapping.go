package mapping

import (
	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/internal/models"
)

// ToModelFxRate converts a domain FxRate to its model form.
func ToModelFxRate(d domain.FxRate) models.FxRate {
	return models.FxRate{
		RateID:           d.RateID,
		BaseCurrencyCode: d.BaseCurrencyCode,
		QuoteCurrency:    d.QuoteCurrency,
		Rate:             d.Rate,
		Precision:        d.Precision,
		EffectiveFrom:    d.EffectiveFrom,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFxRate converts a model FxRate to its domain form.
func ToDomainFxRate(m models.FxRate) domain.FxRate {
	return domain.FxRate{
		RateID:           m.RateID,
		BaseCurrencyCode: m.BaseCurrencyCode,
		QuoteCurrency:    m.QuoteCurrency,
		Rate:             m.Rate,
		Precision:        m.Precision,
		EffectiveFrom:    m.EffectiveFrom,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
