package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
)

// contextKey is unexported so values set here cannot collide with other packages.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	identityCtxKey = contextKey("identity")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger, falling back to slog.Default().
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithIdentity returns a copy of ctx carrying the caller's identity.
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext returns the identity bound to ctx, if any.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(*domain.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// ActingUser returns the username bound to ctx or domain.AnonymousUser.
func ActingUser(ctx context.Context) string {
	if identity, ok := IdentityFromContext(ctx); ok && identity.Username != "" {
		return identity.Username
	}
	return domain.AnonymousUser
}
