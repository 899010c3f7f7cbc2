package mapping

import (
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/models"
)

// ToModelAuditLog converts a domain AuditLogEntry to a model AuditLog
func ToModelAuditLog(d domain.AuditLogEntry) models.AuditLog {
	return models.AuditLog{
		AuditLogID:       d.AuditLogID,
		ActingUser:       d.ActingUser,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		SourceAmount:     d.SourceAmount,
		ConvertedAmount:  d.ConvertedAmount,
		RateApplied:      d.RateApplied,
		CreatedAt:        d.Timestamp,
	}
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLogEntry
func ToDomainAuditLog(m models.AuditLog) domain.AuditLogEntry {
	return domain.AuditLogEntry{
		AuditLogID:       m.AuditLogID,
		ActingUser:       m.ActingUser,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		SourceAmount:     m.SourceAmount,
		ConvertedAmount:  m.ConvertedAmount,
		RateApplied:      m.RateApplied,
		Timestamp:        m.CreatedAt,
	}
}
