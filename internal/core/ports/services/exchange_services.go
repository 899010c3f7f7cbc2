package services

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
)

// ExchangeSvcFacade applies currency conversions.
type ExchangeSvcFacade interface {
	// ApplyExchange converts an amount with the stored rate and records the audit entry
	// before returning. The returned entry is the one that was persisted.
	ApplyExchange(ctx context.Context, req dto.ApplyExchangeRequest) (*domain.AuditLogEntry, error)
}
