package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnonymousUser is recorded as the acting user when no identity is bound to the request.
const AnonymousUser = "anonymous"

// AuditLogEntry is the immutable record of one applied exchange.
type AuditLogEntry struct {
	AuditLogID       string          `json:"auditLogID"`
	ActingUser       string          `json:"actingUser"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	SourceAmount     decimal.Decimal `json:"sourceAmount"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	RateApplied      decimal.Decimal `json:"rateApplied"`
	Timestamp        time.Time       `json:"timestamp"`
}

// AuditLogCursor marks the last entry of a page. The next page starts strictly after it
// in (Timestamp DESC, AuditLogID DESC) order.
type AuditLogCursor struct {
	Timestamp  time.Time
	AuditLogID string
}
