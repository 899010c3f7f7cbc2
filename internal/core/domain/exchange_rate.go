package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the rate for one ordered currency pair. (USD, EUR) and (EUR, USD)
// are distinct rates.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}
