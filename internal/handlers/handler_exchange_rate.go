package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rate")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.getExchangeRate)
		exchangeRates.GET("/all", h.listExchangeRates)
		exchangeRates.GET("/:id", h.getExchangeRateByID)
		exchangeRates.PUT("/:id", h.updateExchangeRate)
		exchangeRates.DELETE("/:id", h.deleteExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a rate for an ordered currency pair. The reverse pair is a separate entry.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Rate for the pair already exists"
// @Security BearerAuth
// @Router /exchange-rate [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		writeValidationError(c, bindingError(err))
		return
	}

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the rate stored for the exact ordered pair
// @Tags exchange rates
// @Produce  json
// @Param   from query string true "From Currency Code (3 letters)" minlength(3) maxlength(3)
// @Param   to   query string true "To Currency Code (3 letters)" minlength(3) maxlength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code format"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Security BearerAuth
// @Router /exchange-rate [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	var params dto.GetExchangeRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind exchange rate query", slog.String("error", err.Error()))
		writeValidationError(c, bindingError(err))
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /exchange-rate/all [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRateByID godoc
// @Summary Get an exchange rate by ID
// @Tags exchange rates
// @Produce  json
// @Param   id path string true "Exchange Rate ID" format(uuid)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Security BearerAuth
// @Router /exchange-rate/{id} [get]
func (h *exchangeRateHandler) getExchangeRateByID(c *gin.Context) {
	rate, err := h.exchangeRateService.GetExchangeRateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateExchangeRate godoc
// @Summary Update an exchange rate
// @Description Replaces the rate value of an existing pair
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   id path string true "Exchange Rate ID" format(uuid)
// @Param   rate body dto.UpdateExchangeRateRequest true "New rate"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Security BearerAuth
// @Router /exchange-rate/{id} [put]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExchangeRate", slog.String("error", err.Error()))
		writeValidationError(c, bindingError(err))
		return
	}

	rate, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// deleteExchangeRate godoc
// @Summary Delete an exchange rate
// @Tags exchange rates
// @Param   id path string true "Exchange Rate ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Security BearerAuth
// @Router /exchange-rate/{id} [delete]
func (h *exchangeRateHandler) deleteExchangeRate(c *gin.Context) {
	if err := h.exchangeRateService.DeleteExchangeRate(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
