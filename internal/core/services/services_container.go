package services

import (
	"github.com/SscSPs/exchange_audit_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/platform/config"
	"google.golang.org/api/idtoken"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.AuditEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)

	var authOpts []AuthServiceOption
	if cfg.GoogleClientID != "" {
		authOpts = append(authOpts, WithGoogleSignIn(cfg.GoogleClientID, idtoken.Validate))
	}
	container.Auth = NewAuthService(repos.UserRepo, container.Token, authOpts...)

	container.User = NewUserService(repos.UserRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Audit = NewAuditService(repos.AuditLogRepo)
	container.Exchange = NewExchangeService(
		repos.TxManager,
		repos.ExchangeRateRepo,
		repos.AuditLogRepo,
		WithAuditPublisher(publisher),
		WithExchangeTxTimeout(cfg.ExchangeTxTimeout),
		WithAuditPublishTimeout(cfg.AuditPublishTimeout),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade        = (*tokenService)(nil)
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.ExchangeSvcFacade     = (*exchangeService)(nil)
	_ portssvc.AuditSvcFacade        = (*auditService)(nil)
)
