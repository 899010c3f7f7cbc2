package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchangeRateService provides business logic for the rate registry.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new instance of exchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateCurrencyCode(verr *apperrors.ValidationError, field, code string) {
	if len(code) != 3 {
		verr.Add(field, "must be a 3-letter currency code")
		return
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			verr.Add(field, "must be a 3-letter currency code")
			return
		}
	}
}

func validateRate(verr *apperrors.ValidationError, rate decimal.Decimal) {
	if msg := domain.CheckRate(rate); msg != "" {
		verr.Add("rate", msg)
	}
}

func validateRateID(rateID string) error {
	if _, err := uuid.Parse(rateID); err != nil {
		return apperrors.NewFieldValidationError("id", "must be a valid UUID")
	}
	return nil
}

// CreateExchangeRate stores a new directional rate. The existence check is a fast path;
// the unique constraint decides between concurrent creators.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	from := NormalizeCurrencyCode(req.FromCurrency)
	to := NormalizeCurrencyCode(req.ToCurrency)

	verr := &apperrors.ValidationError{}
	validateCurrencyCode(verr, "fromCurrency", from)
	validateCurrencyCode(verr, "toCurrency", to)
	validateRate(verr, req.Rate)
	if verr.HasErrors() {
		return nil, verr
	}

	exists, err := s.rateRepo.ExchangeRateExists(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to check exchange rate existence", slog.String("from", from), slog.String("to", to))
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("exchange rate %s -> %s already exists", from, to))
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		CreatedAt:        now,
		LastUpdatedAt:    now,
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save exchange rate", slog.String("from", from), slog.String("to", to))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

// UpdateExchangeRate replaces the rate of an existing entry and stamps LastUpdatedAt.
func (s *exchangeRateService) UpdateExchangeRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if err := validateRateID(rateID); err != nil {
		return nil, err
	}
	verr := &apperrors.ValidationError{}
	validateRate(verr, req.Rate)
	if verr.HasErrors() {
		return nil, verr
	}

	updated, err := s.rateRepo.UpdateExchangeRate(ctx, rateID, req.Rate, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update exchange rate", slog.String("exchange_rate_id", rateID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate updated",
		slog.String("exchange_rate_id", rateID),
		slog.String("rate", updated.Rate.String()))
	return updated, nil
}

// GetExchangeRate returns the rate for the exact ordered pair. Neither the inverse pair
// nor an identity rate is derived.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	from := NormalizeCurrencyCode(fromCurrencyCode)
	to := NormalizeCurrencyCode(toCurrencyCode)

	verr := &apperrors.ValidationError{}
	validateCurrencyCode(verr, "from", from)
	validateCurrencyCode(verr, "to", to)
	if verr.HasErrors() {
		return nil, verr
	}

	return s.rateRepo.FindExchangeRate(ctx, from, to)
}

func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	if err := validateRateID(rateID); err != nil {
		return nil, err
	}
	return s.rateRepo.FindExchangeRateByID(ctx, rateID)
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	return s.rateRepo.ListExchangeRates(ctx)
}

// DeleteExchangeRate removes a rate permanently. Audit entries keep the rate they applied.
func (s *exchangeRateService) DeleteExchangeRate(ctx context.Context, rateID string) error {
	if err := validateRateID(rateID); err != nil {
		return err
	}
	if err := s.rateRepo.DeleteExchangeRate(ctx, rateID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Exchange rate deleted", slog.String("exchange_rate_id", rateID))
	return nil
}
