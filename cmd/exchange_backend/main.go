package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/ports/events"
	"github.com/SscSPs/exchange_audit_app/internal/core/services"
	"github.com/SscSPs/exchange_audit_app/internal/handlers"
	"github.com/SscSPs/exchange_audit_app/internal/kafka"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/SscSPs/exchange_audit_app/internal/platform/config"
	"github.com/SscSPs/exchange_audit_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/exchange_audit_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Exchange Audit API
// @version 1.0
// @description Currency conversion with a persisted audit trail.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	publisher := newAuditPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close audit publisher", slog.String("error", err.Error()))
		}
	}()

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, publisher)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	for _, u := range cfg.BootstrapUsers {
		created, err := container.User.EnsureUser(seedCtx, u.Username, u.Password, u.Roles)
		if err != nil {
			cancelSeed()
			logger.Error("Failed to seed user", slog.String("username", u.Username), slog.String("error", err.Error()))
			os.Exit(1)
		}
		if created {
			logger.Info("Seeded user", slog.String("username", u.Username))
		}
	}
	cancelSeed()

	loginLimiter, err := middleware.NewInMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Invalid login rate limit", slog.String("rate", cfg.LoginRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}

	// Global middleware (cors, logging, recovery)
	r.Use(cors.New(corsConfig), middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, loginLimiter)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("Server failed to run", slog.String("error", err.Error()))
	case sig := <-shutdownChan:
		logger.Info("Shutdown signal received", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// newAuditPublisher connects to Kafka when brokers are configured. Without brokers, or
// when the connection fails, audit events are only logged.
func newAuditPublisher(cfg *config.Config, logger *slog.Logger) events.AuditEventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set. Audit events will not be published.")
		return kafka.NewNoOpPublisher(logger)
	}

	producer, err := kafka.NewAuditProducer(cfg.KafkaBrokers, cfg.KafkaAuditTopic, logger)
	if err != nil {
		logger.Warn("Failed to connect audit producer, falling back to no-op",
			slog.Any("brokers", cfg.KafkaBrokers), slog.String("error", err.Error()))
		return kafka.NewNoOpPublisher(logger)
	}
	return producer
}
