package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the rate stored for the exact ordered pair.
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves an exchange rate by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every stored exchange rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// ExchangeRateExists reports whether a rate is stored for the ordered pair.
	ExchangeRateExists(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (bool, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a new rate. A second rate for the same ordered pair
	// fails with apperrors.ErrDuplicate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpdateExchangeRate replaces the rate value and timestamp of an existing row.
	UpdateExchangeRate(ctx context.Context, rateID string, rate decimal.Decimal, updatedAt time.Time) (*domain.ExchangeRate, error)

	// DeleteExchangeRate removes the row permanently.
	DeleteExchangeRate(ctx context.Context, rateID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx can rebind itself to a running transaction.
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	WithTx(tx pgx.Tx) ExchangeRateRepositoryFacade
}
