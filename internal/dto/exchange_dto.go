package dto

import (
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyExchangeRequest asks for amount to be converted from one currency to another.
type ApplyExchangeRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha"`
	Amount       decimal.Decimal `json:"amount" binding:"exchange_amount" swaggertype:"string" example:"100.00"`
}

// ExchangeResponse is the result of an applied conversion.
type ExchangeResponse struct {
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	SourceAmount    decimal.Decimal `json:"sourceAmount" swaggertype:"string"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount" swaggertype:"string"`
	RateApplied     decimal.Decimal `json:"rateApplied" swaggertype:"string"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ToExchangeResponse builds the response from the persisted audit entry so both carry
// the same rate and amounts.
func ToExchangeResponse(entry *domain.AuditLogEntry) ExchangeResponse {
	return ExchangeResponse{
		FromCurrency:    entry.FromCurrencyCode,
		ToCurrency:      entry.ToCurrencyCode,
		SourceAmount:    entry.SourceAmount,
		ConvertedAmount: entry.ConvertedAmount,
		RateApplied:     entry.RateApplied,
		Timestamp:       entry.Timestamp,
	}
}
