package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) WithTx(tx pgx.Tx) portsrepo.ExchangeRateRepositoryFacade {
	return m
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	var rate *domain.ExchangeRate
	if args.Get(0) != nil {
		rate = args.Get(0).(*domain.ExchangeRate)
	}
	return rate, args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	var rate *domain.ExchangeRate
	if args.Get(0) != nil {
		rate = args.Get(0).(*domain.ExchangeRate)
	}
	return rate, args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	var rates []domain.ExchangeRate
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.ExchangeRate)
	}
	return rates, args.Error(1)
}

func (m *MockExchangeRateRepository) ExchangeRateExists(ctx context.Context, from, to string) (bool, error) {
	args := m.Called(ctx, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rateID string, rate decimal.Decimal, updatedAt time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID, rate, updatedAt)
	var updated *domain.ExchangeRate
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.ExchangeRate)
	}
	return updated, args.Error(1)
}

func (m *MockExchangeRateRepository) DeleteExchangeRate(ctx context.Context, rateID string) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryWithTx = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) WithTx(tx pgx.Tx) portsrepo.AuditLogRepositoryFacade {
	return m
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, limit int, after *domain.AuditLogCursor) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, limit, after)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUserIfAbsent(ctx context.Context, user domain.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

// --- Fake TransactionManager ---
// fakeTxManager runs fn with a nil transaction and reports commitErr after fn succeeds.
type fakeTxManager struct {
	commitErr error
	calls     int
	ctxErrs   []error
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if err := fn(nil); err != nil {
		return err
	}
	return f.commitErr
}

// --- Mock AuditEventPublisher ---
type MockAuditPublisher struct {
	mock.Mock
}

var _ events.AuditEventPublisher = (*MockAuditPublisher)(nil)

func (m *MockAuditPublisher) PublishAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditPublisher) Close() error {
	return m.Called().Error(0)
}
