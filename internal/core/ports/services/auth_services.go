package services

import (
	"context"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
)

// TokenSvcFacade issues and verifies stateless identity tokens.
type TokenSvcFacade interface {
	// IssueToken signs a token for the identity and returns it with its expiry.
	IssueToken(identity domain.Identity) (string, time.Time, error)
	// VerifyToken returns the identity carried by a valid, unexpired token.
	// It returns apperrors.ErrTokenExpired or apperrors.ErrInvalidToken otherwise.
	VerifyToken(token string) (*domain.Identity, error)
}

// CredentialVerifierSvc checks a username/password pair.
type CredentialVerifierSvc interface {
	// Authenticate returns apperrors.ErrInvalidCredentials for an unknown user or a wrong password.
	Authenticate(ctx context.Context, username, password string) (*domain.Identity, error)
}

// AuthSvcFacade combines credential verification with token issuance.
type AuthSvcFacade interface {
	CredentialVerifierSvc
	// Login verifies credentials and issues a token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// LoginWithGoogle validates a Google ID token and issues a token for the matching stored user.
	LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.LoginResponse, error)
}
