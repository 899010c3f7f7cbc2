package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	defaultExchangeTxTimeout   = 10 * time.Second
	defaultAuditPublishTimeout = 2 * time.Second
)

// exchangeService applies a conversion and records its audit entry in one transaction.
type exchangeService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	rateRepo       portsrepo.ExchangeRateRepositoryWithTx
	auditRepo      portsrepo.AuditLogRepositoryWithTx
	publisher      events.AuditEventPublisher
	txTimeout      time.Duration
	// publishTimeout bounds how long a committed exchange waits on the broker.
	publishTimeout time.Duration
	now            func() time.Time
}

// ExchangeServiceOption configures an exchangeService.
type ExchangeServiceOption func(*exchangeService)

// WithAuditPublisher publishes every committed audit entry.
func WithAuditPublisher(publisher events.AuditEventPublisher) ExchangeServiceOption {
	return func(s *exchangeService) {
		s.publisher = publisher
	}
}

// WithExchangeClock replaces time.Now for audit timestamps.
func WithExchangeClock(now func() time.Time) ExchangeServiceOption {
	return func(s *exchangeService) {
		s.now = now
	}
}

// WithExchangeTxTimeout bounds the transaction, which runs detached from request cancellation.
func WithExchangeTxTimeout(timeout time.Duration) ExchangeServiceOption {
	return func(s *exchangeService) {
		if timeout > 0 {
			s.txTimeout = timeout
		}
	}
}

// WithAuditPublishTimeout bounds the post-commit publish.
func WithAuditPublishTimeout(timeout time.Duration) ExchangeServiceOption {
	return func(s *exchangeService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

// NewExchangeService creates a new instance of exchangeService.
func NewExchangeService(
	txManager portsrepo.TransactionManager,
	rateRepo portsrepo.ExchangeRateRepositoryWithTx,
	auditRepo portsrepo.AuditLogRepositoryWithTx,
	opts ...ExchangeServiceOption,
) portssvc.ExchangeSvcFacade {
	s := &exchangeService{
		txManager:      txManager,
		rateRepo:       rateRepo,
		auditRepo:      auditRepo,
		txTimeout:      defaultExchangeTxTimeout,
		publishTimeout: defaultAuditPublishTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyExchange reads the rate for the ordered pair, converts the amount and appends the
// audit entry inside one transaction. The entry is returned only after commit, so a
// conversion is never reported without its audit row.
func (s *exchangeService) ApplyExchange(ctx context.Context, req dto.ApplyExchangeRequest) (*domain.AuditLogEntry, error) {
	from := NormalizeCurrencyCode(req.FromCurrency)
	to := NormalizeCurrencyCode(req.ToCurrency)

	verr := &apperrors.ValidationError{}
	validateCurrencyCode(verr, "fromCurrency", from)
	validateCurrencyCode(verr, "toCurrency", to)
	if msg := domain.CheckAmount(req.Amount); msg != "" {
		verr.Add("amount", msg)
	}
	if verr.HasErrors() {
		return nil, verr
	}

	actingUser := middleware.ActingUser(ctx)

	// Once started, the write must not be aborted by the caller going away.
	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.txTimeout)
	defer cancel()

	var entry domain.AuditLogEntry
	err := s.txManager.WithTx(txCtx, func(tx pgx.Tx) error {
		rate, err := s.rateRepo.WithTx(tx).FindExchangeRate(txCtx, from, to)
		if err != nil {
			return err
		}

		applied := rate.Rate
		entry = domain.AuditLogEntry{
			AuditLogID:       uuid.NewString(),
			ActingUser:       actingUser,
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			SourceAmount:     req.Amount,
			ConvertedAmount:  domain.ConvertAmount(req.Amount, applied),
			RateApplied:      applied,
			// Postgres keeps microseconds; truncate so the response matches the stored row.
			Timestamp: s.now().UTC().Truncate(time.Microsecond),
		}

		return s.auditRepo.WithTx(tx).SaveAuditLog(txCtx, entry)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			s.LogInfo(txCtx, "Exchange rejected, no rate for pair", slog.String("from", from), slog.String("to", to))
			return nil, err
		}
		s.LogError(txCtx, err, "Exchange transaction failed",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("acting_user", actingUser))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to apply exchange", err)
	}

	s.LogInfo(txCtx, "Exchange applied",
		slog.String("audit_log_id", entry.AuditLogID),
		slog.String("acting_user", actingUser),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("rate_applied", entry.RateApplied.String()))

	if s.publisher != nil {
		s.publish(ctx, entry)
	}

	return &entry, nil
}

// publish sends the committed entry with its own deadline. The DB row is authoritative,
// so failures are only logged.
func (s *exchangeService) publish(ctx context.Context, entry domain.AuditLogEntry) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.PublishAuditLog(pubCtx, entry); err != nil {
		s.GetLogger(pubCtx).Warn("Failed to publish audit event",
			slog.String("audit_log_id", entry.AuditLogID),
			slog.String("error", err.Error()))
	}
}
