package repositories

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AuditLogReader defines read operations for audit data
type AuditLogReader interface {
	// ListAuditLogs returns up to limit entries newest first, starting after the cursor
	// when one is given.
	ListAuditLogs(ctx context.Context, limit int, after *domain.AuditLogCursor) ([]domain.AuditLogEntry, error)
}

// AuditLogAppender is the only write path for audit data. There is no update or delete.
type AuditLogAppender interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error
}

// AuditLogRepositoryFacade combines all audit-related repository interfaces
type AuditLogRepositoryFacade interface {
	AuditLogReader
	AuditLogAppender
}

// AuditLogRepositoryWithTx can rebind itself to a running transaction.
type AuditLogRepositoryWithTx interface {
	AuditLogRepositoryFacade
	WithTx(tx pgx.Tx) AuditLogRepositoryFacade
}
