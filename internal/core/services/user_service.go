package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// EnsureUser seeds a credential if the username is free. Existing rows, including their
// password hash and roles, are left untouched.
func (s *userService) EnsureUser(ctx context.Context, username, password string, roles []string) (bool, error) {
	username = strings.TrimSpace(username)
	verr := &apperrors.ValidationError{}
	if username == "" {
		verr.Add("username", "is required")
	}
	if password == "" {
		verr.Add("password", "is required")
	}
	if len(roles) == 0 {
		verr.Add("roles", "at least one role is required")
	}
	if verr.HasErrors() {
		return false, verr
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password for %s: %w", username, err)
	}

	created, err := s.userRepo.SaveUserIfAbsent(ctx, domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed user", slog.String("username", username))
		return false, err
	}

	if created {
		s.LogInfo(ctx, "User created", slog.String("username", username), slog.Any("roles", roles))
	} else {
		s.LogDebug(ctx, "User already exists, leaving it unchanged", slog.String("username", username))
	}
	return created, nil
}
