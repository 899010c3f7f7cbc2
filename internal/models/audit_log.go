package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditLog mirrors a row of the append-only audit_logs table.
type AuditLog struct {
	AuditLogID       string          `db:"audit_log_id"`
	ActingUser       string          `db:"acting_user"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	SourceAmount     decimal.Decimal `db:"source_amount"`
	ConvertedAmount  decimal.Decimal `db:"converted_amount"`
	RateApplied      decimal.Decimal `db:"rate_applied"`
	CreatedAt        time.Time       `db:"created_at"`
}
