package dto

import (
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListAuditLogsParams defines query parameters for listing audit entries.
type ListAuditLogsParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

type AuditLogResponse struct {
	ID              string          `json:"id"`
	User            string          `json:"user"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	SourceAmount    decimal.Decimal `json:"sourceAmount" swaggertype:"string"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount" swaggertype:"string"`
	RateApplied     decimal.Decimal `json:"rateApplied" swaggertype:"string"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ListAuditLogsResponse wraps a page of audit entries.
type ListAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"auditLogs"`
	NextToken *string            `json:"nextToken,omitempty"`
}

func ToAuditLogResponse(entry domain.AuditLogEntry) AuditLogResponse {
	return AuditLogResponse{
		ID:              entry.AuditLogID,
		User:            entry.ActingUser,
		FromCurrency:    entry.FromCurrencyCode,
		ToCurrency:      entry.ToCurrencyCode,
		SourceAmount:    entry.SourceAmount,
		ConvertedAmount: entry.ConvertedAmount,
		RateApplied:     entry.RateApplied,
		Timestamp:       entry.Timestamp,
	}
}

// ToListAuditLogsResponse converts a page of domain entries.
func ToListAuditLogsResponse(entries []domain.AuditLogEntry, nextToken *string) ListAuditLogsResponse {
	responses := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToAuditLogResponse(entry)
	}
	return ListAuditLogsResponse{AuditLogs: responses, NextToken: nextToken}
}
