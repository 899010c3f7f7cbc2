package pgsql

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_audit_app/internal/models"
	"github.com/SscSPs/exchange_audit_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const selectAuditLogFields = `audit_log_id, acting_user, from_currency_code, to_currency_code, source_amount, converted_amount, rate_applied, created_at`

// PgxAuditLogRepository appends to and reads from audit_logs. It has no update or
// delete statements.
type PgxAuditLogRepository struct {
	BaseRepository
}

var _ portsrepo.AuditLogRepositoryWithTx = (*PgxAuditLogRepository)(nil)

func NewPgxAuditLogRepository(db DBTX) *PgxAuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{DB: db}}
}

// WithTx returns a copy of the repository that runs its statements on tx.
func (r *PgxAuditLogRepository) WithTx(tx pgx.Tx) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{DB: tx}}
}

// SaveAuditLog appends one entry.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	m := mapping.ToModelAuditLog(entry)
	_, err := r.DB.Exec(ctx, `
		INSERT INTO audit_logs (audit_log_id, acting_user, from_currency_code, to_currency_code, source_amount, converted_amount, rate_applied, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.AuditLogID, m.ActingUser, m.FromCurrencyCode, m.ToCurrencyCode,
		m.SourceAmount, m.ConvertedAmount, m.RateApplied, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save audit log", err)
	}
	return nil
}

// ListAuditLogs returns a page of entries, newest first, using keyset pagination.
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, limit int, after *domain.AuditLogCursor) ([]domain.AuditLogEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = r.DB.Query(ctx, `
			SELECT `+selectAuditLogFields+`
			FROM audit_logs ORDER BY created_at DESC, audit_log_id DESC LIMIT $1`,
			limit,
		)
	} else {
		rows, err = r.DB.Query(ctx, `
			SELECT `+selectAuditLogFields+`
			FROM audit_logs WHERE (created_at, audit_log_id) < ($1, $2)
			ORDER BY created_at DESC, audit_log_id DESC LIMIT $3`,
			after.Timestamp, after.AuditLogID, limit,
		)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list audit logs", err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		var m models.AuditLog
		if err := rows.Scan(
			&m.AuditLogID, &m.ActingUser, &m.FromCurrencyCode, &m.ToCurrencyCode,
			&m.SourceAmount, &m.ConvertedAmount, &m.RateApplied, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit log", err)
		}
		entries = append(entries, mapping.ToDomainAuditLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit logs", err)
	}
	return entries, nil
}
