package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// IdentityVerifier turns a bearer token into an identity.
type IdentityVerifier interface {
	VerifyToken(token string) (*domain.Identity, error)
}

// IdentityMiddleware binds the caller's identity to the request context when a valid
// bearer token is presented. It never rejects a request: a missing or bad token leaves
// the request anonymous and the access decision to RequireAuthenticated / RequireRole.
func IdentityMiddleware(verifier IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			logger.Warn("Authorization header format invalid, continuing anonymously")
			c.Next()
			return
		}

		identity, err := verifier.VerifyToken(strings.TrimSpace(parts[1]))
		if err != nil {
			reason := "invalid"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				reason = "expired"
			}
			logger.Warn("Bearer token rejected, continuing anonymously", slog.String("reason", reason))
			c.Next()
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", identity.Username))
		ctx := WithIdentity(c.Request.Context(), identity)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuthenticated rejects anonymous requests with 401.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFromContext(c.Request.Context()); !ok {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized", "authentication required")
			return
		}
		c.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and callers lacking role with 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c.Request.Context())
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized", "authentication required")
			return
		}
		if !identity.HasRole(role) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role check failed", slog.String("required_role", role))
			abortWithError(c, http.StatusForbidden, "Forbidden", "insufficient role")
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, status int, label, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     label,
		Message:   message,
	})
}
