package handlers

import (
	"net/http"

	"github.com/SscSPs/exchange_audit_app/cmd/docs"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/SscSPs/exchange_audit_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	registerValidation()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Every request passes through identity propagation. It never rejects; route
	// groups below decide who may proceed.
	r.Use(middleware.IdentityMiddleware(services.Token))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth, loginLimiter)

	setupProtectedRoutes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(authService)

	auth := r.Group("/auth")
	if loginLimiter != nil {
		auth.Use(middleware.RateLimit(loginLimiter))
	}
	auth.POST("/login", h.login)
	if cfg.GoogleClientID != "" {
		auth.POST("/google", h.loginWithGoogle)
	}
}

// setupProtectedRoutes registers every route that needs a bound identity.
func setupProtectedRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	authenticated := r.Group("", middleware.RequireAuthenticated())

	exchange := newExchangeHandler(services.Exchange)
	authenticated.POST("/exchange/apply", exchange.applyExchange)

	registerExchangeRateRoutes(authenticated, services.ExchangeRate)

	admin := newAdminHandler(services.ExchangeRate, services.Audit)
	db := authenticated.Group("/db", middleware.RequireRole(domain.RoleAdmin))
	{
		db.GET("/exchange-rates", admin.listAllExchangeRates)
		db.GET("/audit-logs", admin.listAuditLogs)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
