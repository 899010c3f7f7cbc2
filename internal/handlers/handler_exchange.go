package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(exchangeService portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: exchangeService}
}

// applyExchange godoc
// @Summary Convert an amount between two currencies
// @Description Converts the amount with the stored rate for the ordered pair and records an audit entry attributed to the caller
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   exchange body dto.ApplyExchangeRequest true "Currency pair and amount"
// @Success 200 {object} dto.ExchangeResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No rate for the pair"
// @Failure 500 {object} dto.ErrorResponse "Exchange could not be recorded"
// @Security BearerAuth
// @Router /exchange/apply [post]
func (h *exchangeHandler) applyExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ApplyExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind exchange request", slog.String("error", err.Error()))
		writeValidationError(c, bindingError(err))
		return
	}

	entry, err := h.exchangeService.ApplyExchange(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeResponse(entry))
}
