package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const genericInternalMessage = "an unexpected error occurred"

// respondWithError maps a service error to its status and writes the error body.
// Internal failures are logged in full and answered with a generic message.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		writeValidationError(c, verr)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "Unauthorized", apperrors.ErrInvalidCredentials.Error())
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrInvalidToken), errors.Is(err, apperrors.ErrUnauthorized):
		writeError(c, http.StatusUnauthorized, "Unauthorized", "authentication required")
	case errors.Is(err, apperrors.ErrForbidden):
		writeError(c, http.StatusForbidden, "Forbidden", "insufficient role")
	case errors.Is(err, apperrors.ErrRateNotFound):
		writeError(c, http.StatusNotFound, "Rate Not Found", "no exchange rate for the requested currency pair")
	case errors.Is(err, apperrors.ErrNotFound):
		writeError(c, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, apperrors.ErrDuplicate):
		writeError(c, http.StatusConflict, "Already Exists", err.Error())
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotImplemented {
			writeError(c, http.StatusNotImplemented, "Not Implemented", appErr.Message)
			return
		}
		logger.Error("Request failed", slog.String("error", err.Error()))
		writeError(c, http.StatusInternalServerError, "Internal Server Error", genericInternalMessage)
	}
}

func writeError(c *gin.Context, status int, label, message string) {
	c.JSON(status, dto.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     label,
		Message:   message,
	})
}

func writeValidationError(c *gin.Context, verr *apperrors.ValidationError) {
	resp := dto.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     "Validation Error",
		Errors:    map[string]string{},
	}
	for field, msg := range verr.Fields {
		if field == "" {
			resp.Message = msg
			continue
		}
		resp.Errors[field] = msg
	}
	if resp.Message == "" {
		resp.Message = "request validation failed"
	}
	c.JSON(http.StatusBadRequest, resp)
}
