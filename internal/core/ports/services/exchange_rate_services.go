package services

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rates
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the rate for the exact ordered pair.
	GetExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)
	// GetExchangeRateByID retrieves an exchange rate by its ID.
	GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)
	// ListExchangeRates retrieves every stored exchange rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rates
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate stores a new rate; apperrors.ErrDuplicate if the pair exists.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	// UpdateExchangeRate replaces the rate of an existing entry.
	UpdateExchangeRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)
	// DeleteExchangeRate removes an entry.
	DeleteExchangeRate(ctx context.Context, rateID string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
