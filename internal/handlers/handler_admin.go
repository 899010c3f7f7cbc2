package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves read-only database introspection for the ADMIN role.
type adminHandler struct {
	exchangeRateService portssvc.ExchangeRateReaderSvc
	auditService        portssvc.AuditSvcFacade
}

func newAdminHandler(ers portssvc.ExchangeRateReaderSvc, auditService portssvc.AuditSvcFacade) *adminHandler {
	return &adminHandler{exchangeRateService: ers, auditService: auditService}
}

// listAllExchangeRates godoc
// @Summary Dump stored exchange rates
// @Tags admin
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "ADMIN role required"
// @Security BearerAuth
// @Router /db/exchange-rates [get]
func (h *adminHandler) listAllExchangeRates(c *gin.Context) {
	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// listAuditLogs godoc
// @Summary List audit entries
// @Description Returns audit entries newest first. Pass nextToken from the previous page to continue.
// @Tags admin
// @Produce  json
// @Param   limit query int false "Page size" minimum(1) maximum(500) default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "ADMIN role required"
// @Security BearerAuth
// @Router /db/audit-logs [get]
func (h *adminHandler) listAuditLogs(c *gin.Context) {
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind audit log query", slog.String("error", err.Error()))
		writeValidationError(c, bindingError(err))
		return
	}

	resp, err := h.auditService.ListAuditLogs(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
