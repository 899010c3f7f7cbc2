package events

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
)

// AuditEventPublisher forwards committed audit entries to downstream consumers.
// The database row stays the source of truth; publishing is best effort.
type AuditEventPublisher interface {
	PublishAuditLog(ctx context.Context, entry domain.AuditLogEntry) error
	Close() error
}
