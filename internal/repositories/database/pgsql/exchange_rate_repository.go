package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_audit_app/internal/models"
	"github.com/SscSPs/exchange_audit_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const selectExchangeRateFields = `exchange_rate_id, from_currency_code, to_currency_code, rate, created_at, last_updated_at`

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryWithTx.
type PgxExchangeRateRepository struct {
	BaseRepository
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db DBTX) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{DB: db}}
}

// WithTx returns a copy of the repository that runs its statements on tx.
func (r *PgxExchangeRateRepository) WithTx(tx pgx.Tx) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{DB: tx}}
}

func scanExchangeRate(row pgx.Row) (*domain.ExchangeRate, error) {
	var m models.ExchangeRate
	if err := row.Scan(&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode, &m.Rate, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return nil, err
	}
	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// SaveExchangeRate inserts a new exchange rate. The (from_currency_code,
// to_currency_code) unique constraint is what rejects duplicates under concurrency.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := r.DB.Exec(ctx, `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode, m.Rate, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("exchange rate " + m.FromCurrencyCode + " -> " + m.ToCurrencyCode + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return nil
}

// FindExchangeRate retrieves the rate for the exact ordered pair. No inverse or
// identity rate is derived.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	rate, err := scanExchangeRate(r.DB.QueryRow(ctx,
		`SELECT `+selectExchangeRateFields+` FROM exchange_rates WHERE from_currency_code = $1 AND to_currency_code = $2`,
		fromCurrencyCode, toCurrencyCode,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}
	return rate, nil
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	rate, err := scanExchangeRate(r.DB.QueryRow(ctx,
		`SELECT `+selectExchangeRateFields+` FROM exchange_rates WHERE exchange_rate_id = $1`,
		rateID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get exchange rate by ID", err)
	}
	return rate, nil
}

// ExchangeRateExists reports whether a rate is stored for the ordered pair.
func (r *PgxExchangeRateRepository) ExchangeRateExists(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM exchange_rates WHERE from_currency_code = $1 AND to_currency_code = $2)`,
		fromCurrencyCode, toCurrencyCode,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check exchange rate existence", err)
	}
	return exists, nil
}

// ListExchangeRates retrieves all exchange rates ordered by pair.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+selectExchangeRateFields+` FROM exchange_rates ORDER BY from_currency_code, to_currency_code`,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		rate, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}
	return rates, nil
}

// UpdateExchangeRate replaces the rate and its last-updated timestamp.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rateID string, rate decimal.Decimal, updatedAt time.Time) (*domain.ExchangeRate, error) {
	updated, err := scanExchangeRate(r.DB.QueryRow(ctx,
		`UPDATE exchange_rates SET rate = $1, last_updated_at = $2 WHERE exchange_rate_id = $3 RETURNING `+selectExchangeRateFields,
		rate, updatedAt, rateID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to update exchange rate", err)
	}
	return updated, nil
}

// DeleteExchangeRate removes the row permanently.
func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, rateID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM exchange_rates WHERE exchange_rate_id = $1`, rateID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete exchange rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
	}
	return nil
}
