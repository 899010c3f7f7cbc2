package repositories

import (
	"context"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
)

// UserReader is the credential lookup capability used by the credential verifier.
type UserReader interface {
	// FindUserByUsername returns apperrors.ErrNotFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUserIfAbsent inserts the user unless the username is taken. It reports
	// whether a row was inserted.
	SaveUserIfAbsent(ctx context.Context, user domain.User) (bool, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
