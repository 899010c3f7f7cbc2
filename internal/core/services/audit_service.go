package services

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/utils/pagination"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 500
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogReader
}

// NewAuditService creates a new instance of auditService.
func NewAuditService(auditRepo portsrepo.AuditLogReader) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

// ListAuditLogs reads one page plus one extra row to decide whether a next page exists.
func (s *auditService) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	var after *domain.AuditLogCursor
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodeAuditCursor(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("nextToken", "is not a valid pagination token")
		}
		after = cursor
	}

	entries, err := s.auditRepo.ListAuditLogs(ctx, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs")
		return nil, err
	}

	var nextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeAuditCursor(domain.AuditLogCursor{Timestamp: last.Timestamp, AuditLogID: last.AuditLogID})
		nextToken = &token
	}

	resp := dto.ToListAuditLogsResponse(entries, nextToken)
	return &resp, nil
}
