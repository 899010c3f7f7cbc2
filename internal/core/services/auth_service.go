package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/utils"
	"google.golang.org/api/idtoken"
)

// GoogleIDTokenValidator validates a Google ID token for audience. idtoken.Validate satisfies it.
type GoogleIDTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// authService verifies credentials against the injected user store and issues tokens.
type authService struct {
	BaseService
	userReader     portsrepo.UserReader
	tokenService   portssvc.TokenSvcFacade
	googleClientID string
	validateGoogle GoogleIDTokenValidator
}

// AuthServiceOption configures an authService.
type AuthServiceOption func(*authService)

// WithGoogleSignIn enables Google ID-token login for clientID.
func WithGoogleSignIn(clientID string, validator GoogleIDTokenValidator) AuthServiceOption {
	return func(s *authService) {
		s.googleClientID = clientID
		s.validateGoogle = validator
	}
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userReader portsrepo.UserReader, tokenService portssvc.TokenSvcFacade, opts ...AuthServiceOption) portssvc.AuthSvcFacade {
	s := &authService{
		userReader:   userReader,
		tokenService: tokenService,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate returns the identity for a matching username/password pair. Unknown
// users and wrong passwords both yield apperrors.ErrInvalidCredentials after one bcrypt
// comparison each.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.Identity, error) {
	user, err := s.userReader.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CheckPasswordAgainstDummy(password)
			s.LogDebug(ctx, "Login attempt for unknown user")
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to verify credentials", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Login attempt with wrong password", slog.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// Login verifies credentials and issues a bearer token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, *identity)
}

// LoginWithGoogle validates a Google ID token and issues a token for the stored user whose
// username equals the verified email. It never creates users.
func (s *authService) LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.LoginResponse, error) {
	if s.googleClientID == "" || s.validateGoogle == nil {
		return nil, apperrors.NewAppError(http.StatusNotImplemented, "google sign-in is not configured", nil)
	}

	payload, err := s.validateGoogle(ctx, req.IDToken, s.googleClientID)
	if err != nil {
		s.GetLogger(ctx).Warn("Google ID token validation failed", slog.String("error", err.Error()))
		return nil, apperrors.ErrInvalidCredentials
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		s.GetLogger(ctx).Warn("Google ID token has no verified email", slog.String("subject", payload.Subject))
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userReader.FindUserByUsername(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for Google sign-in")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to verify credentials", err)
	}

	return s.issue(ctx, *user.Identity())
}

func (s *authService) issue(ctx context.Context, identity domain.Identity) (*dto.LoginResponse, error) {
	token, expiresAt, err := s.tokenService.IssueToken(identity)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.String("username", identity.Username))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("username", identity.Username))
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		Username:  identity.Username,
		ExpiresAt: expiresAt,
	}, nil
}
