package services

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/dto"
)

// AuditSvcFacade exposes read access to the audit log. Entries are only ever written
// by the exchange flow.
type AuditSvcFacade interface {
	// ListAuditLogs returns one page of entries, newest first, with the token of the next
	// page when more entries exist.
	ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error)
}
