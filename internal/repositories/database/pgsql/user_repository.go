package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_audit_app/internal/models"
	"github.com/SscSPs/exchange_audit_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func NewPgxUserRepository(db DBTX) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{DB: db}}
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m models.User
	err := r.DB.QueryRow(ctx,
		`SELECT user_id, username, password_hash, roles, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&m.UserID, &m.Username, &m.PasswordHash, &m.Roles, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUserIfAbsent(ctx context.Context, user domain.User) (bool, error) {
	m := mapping.ToModelUser(user)
	tag, err := r.DB.Exec(ctx, `
		INSERT INTO users (user_id, username, password_hash, roles, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING`,
		m.UserID, m.Username, m.PasswordHash, m.Roles, m.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save user %s: %w", m.Username, err)
	}
	return tag.RowsAffected() == 1, nil
}
