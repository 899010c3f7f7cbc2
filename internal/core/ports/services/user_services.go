package services

import (
	"context"
)

// UserSvcFacade manages stored credentials.
type UserSvcFacade interface {
	// EnsureUser stores the user with a bcrypt hash of password unless the username
	// already exists. It reports whether a row was created.
	EnsureUser(ctx context.Context, username, password string, roles []string) (bool, error)
}
