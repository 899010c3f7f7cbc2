package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/platform/config"
	"github.com/SscSPs/exchange_audit_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService issues and verifies HS256 identity tokens. It holds no per-token state.
type tokenService struct {
	secret string
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// TokenServiceOption configures a tokenService.
type TokenServiceOption func(*tokenService)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a new instance of tokenService from the JWT settings in cfg.
func NewTokenService(cfg *config.Config, opts ...TokenServiceOption) portssvc.TokenSvcFacade {
	s := &tokenService{
		secret: cfg.JWTSecret,
		issuer: cfg.JWTIssuer,
		expiry: cfg.JWTExpiryDuration,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueToken signs a token for identity expiring after the configured duration.
func (s *tokenService) IssueToken(identity domain.Identity) (string, time.Time, error) {
	if identity.Username == "" {
		return "", time.Time{}, apperrors.NewValidationError("cannot issue a token without a subject")
	}

	issuedAt := s.now()
	expiresAt := jwt.NewNumericDate(issuedAt.Add(s.expiry)).Time

	token, err := utils.GenerateJWT(identity.Username, identity.Roles, s.secret, s.issuer, issuedAt, expiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// VerifyToken checks signature, algorithm, issuer and expiry. A token is valid only
// while now is strictly before its exp claim.
func (s *tokenService) VerifyToken(token string) (*domain.Identity, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.secret, s.issuer, s.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", apperrors.ErrInvalidToken)
	}

	return &domain.Identity{Username: claims.Subject, Roles: claims.Roles}, nil
}
