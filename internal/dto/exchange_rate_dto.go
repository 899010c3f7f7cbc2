package dto

import (
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha"`
	Rate         decimal.Decimal `json:"rate" binding:"exchange_rate" swaggertype:"string" example:"0.92"`
}

// UpdateExchangeRateRequest replaces the rate of an existing pair.
type UpdateExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"exchange_rate" swaggertype:"string" example:"0.95"`
}

// GetExchangeRateParams are the query parameters of a single-pair lookup.
type GetExchangeRateParams struct {
	From string `form:"from" binding:"required,len=3,alpha"`
	To   string `form:"to" binding:"required,len=3,alpha"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"id"`
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	Rate           decimal.Decimal `json:"rate" swaggertype:"string"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		FromCurrency:   rate.FromCurrencyCode,
		ToCurrency:     rate.ToCurrencyCode,
		Rate:           rate.Rate,
		CreatedAt:      rate.CreatedAt,
		LastUpdated:    rate.LastUpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
