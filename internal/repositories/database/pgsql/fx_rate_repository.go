package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	"github.com/finledger/finledger/internal/models"
	"github.com/finledger/finledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFxRateRepository struct {
	BaseRepository
}

// newPgxFxRateRepository creates a new repository for currency rates.
func newPgxFxRateRepository(pool *pgxpool.Pool) portsrepo.FxRateRepository {
	return &PgxFxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FxRateRepository = (*PgxFxRateRepository)(nil)

// FindRate retrieves the newest rate for the pair effective at the given
// time.
func (r *PgxFxRateRepository) FindRate(ctx context.Context, baseCurrency, quoteCurrency string, at time.Time) (*domain.FxRate, error) {
	query := `
		SELECT rate_id, base_currency_code, quote_currency_code, rate, precision, effective_from,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM fx_rates
		WHERE base_currency_code = $1 AND quote_currency_code = $2 AND effective_from <= $3
		ORDER BY effective_from DESC
		LIMIT 1;
	`
	var m models.FxRate
	err := r.Pool.QueryRow(ctx, query, baseCurrency, quoteCurrency, at).Scan(
		&m.RateID,
		&m.BaseCurrencyCode,
		&m.QuoteCurrency,
		&m.Rate,
		&m.Precision,
		&m.EffectiveFrom,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rate "+baseCurrency+"/"+quoteCurrency, err)
	}

	rate := mapping.ToDomainFxRate(m)
	return &rate, nil
}

// SaveRate persists a new rate row.
func (r *PgxFxRateRepository) SaveRate(ctx context.Context, rate domain.FxRate) error {
	m := mapping.ToModelFxRate(rate)
	query := `
		INSERT INTO fx_rates (
			rate_id, base_currency_code, quote_currency_code, rate, precision, effective_from,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateID,
		m.BaseCurrencyCode,
		m.QuoteCurrency,
		m.Rate,
		m.Precision,
		m.EffectiveFrom,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert fx rate "+m.RateID, err)
	}
	return nil
}
