package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_audit_app/internal/core/ports/services"
	"github.com/SscSPs/exchange_audit_app/internal/core/services"
	"github.com/SscSPs/exchange_audit_app/internal/dto"
	"github.com/SscSPs/exchange_audit_app/internal/handlers"
	"github.com/SscSPs/exchange_audit_app/internal/middleware"
	"github.com/SscSPs/exchange_audit_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router                  *gin.Engine
	cfg                     *config.Config
	container               *portssvc.ServiceContainer
	mockAuthService         *MockAuthService
	mockExchangeService     *MockExchangeService
	mockExchangeRateService *MockExchangeRateService
	mockAuditService        *MockAuditService
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTIssuer:         "exchange-audit-test",
		JWTExpiryDuration: time.Hour,
		IsProduction:      true,
	}
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = testConfig()

	s.mockAuthService = new(MockAuthService)
	s.mockExchangeService = new(MockExchangeService)
	s.mockExchangeRateService = new(MockExchangeRateService)
	s.mockAuditService = new(MockAuditService)

	// The real token service backs the identity middleware.
	s.container = &portssvc.ServiceContainer{
		Auth:         s.mockAuthService,
		Token:        services.NewTokenService(s.cfg),
		ExchangeRate: s.mockExchangeRateService,
		Exchange:     s.mockExchangeService,
		Audit:        s.mockAuditService,
	}

	s.router = s.newRouter(nil)
}

func (s *HandlersTestSuite) newRouter(loginLimiter *limiter.Limiter) *gin.Engine {
	r := gin.New()
	handlers.RegisterRoutes(r, s.cfg, s.container, loginLimiter)
	return r
}

func (s *HandlersTestSuite) tokenFor(username string, roles ...string) string {
	token, _, err := s.container.Token.IssueToken(domain.Identity{Username: username, Roles: roles})
	s.Require().NoError(err)
	return token
}

func (s *HandlersTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func actingUser(username string) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return middleware.ActingUser(ctx) == username
	})
}

// --- Test Cases ---

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestApplyExchange_Success() {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := &domain.AuditLogEntry{
		AuditLogID:       uuid.NewString(),
		ActingUser:       "alice",
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		SourceAmount:     decimal.NewFromInt(100),
		ConvertedAmount:  decimal.RequireFromString("92.00"),
		RateApplied:      decimal.RequireFromString("0.92"),
		Timestamp:        now,
	}

	s.mockExchangeService.On("ApplyExchange",
		actingUser("alice"),
		mock.MatchedBy(func(r dto.ApplyExchangeRequest) bool {
			return r.FromCurrency == "USD" && r.ToCurrency == "EUR" && r.Amount.Equal(decimal.NewFromInt(100))
		}),
	).Return(entry, nil).Once()

	w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser),
		`{"fromCurrency":"USD","toCurrency":"EUR","amount":"100"}`)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("USD", resp.FromCurrency)
	s.Equal("EUR", resp.ToCurrency)
	s.True(resp.ConvertedAmount.Equal(decimal.RequireFromString("92")))
	s.True(resp.RateApplied.Equal(decimal.RequireFromString("0.92")))
	s.True(resp.Timestamp.Equal(now))
	s.mockExchangeService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestApplyExchange_RequiresIdentity() {
	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/exchange/apply", tt.token, `{"fromCurrency":"USD","toCurrency":"EUR","amount":"1"}`)
			s.Equal(http.StatusUnauthorized, w.Code)
			s.Equal("Unauthorized", s.decodeError(w).Error)
		})
	}
	s.mockExchangeService.AssertNotCalled(s.T(), "ApplyExchange", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestApplyExchange_ExpiredTokenIsUnauthorized() {
	past := services.NewTokenService(s.cfg, services.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}))
	token, _, err := past.IssueToken(domain.Identity{Username: "alice", Roles: []string{domain.RoleUser}})
	s.Require().NoError(err)

	w := s.do(http.MethodPost, "/exchange/apply", token, `{"fromCurrency":"USD","toCurrency":"EUR","amount":"1"}`)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockExchangeService.AssertNotCalled(s.T(), "ApplyExchange", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestApplyExchange_ValidationCollectsAllFields() {
	w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser),
		`{"fromCurrency":"US","amount":"-5"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	resp := s.decodeError(w)
	s.Equal("Validation Error", resp.Error)
	s.Equal("must be exactly 3 characters", resp.Errors["fromCurrency"])
	s.Equal("is required", resp.Errors["toCurrency"])
	s.Equal("must be greater than 0", resp.Errors["amount"])
	s.mockExchangeService.AssertNotCalled(s.T(), "ApplyExchange", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestApplyExchange_MalformedJSON() {
	w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser), `{"fromCurrency":`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Validation Error", s.decodeError(w).Error)
}

func (s *HandlersTestSuite) TestApplyExchange_AmountOutOfRange() {
	cases := map[string]string{
		"above column range": `{"fromCurrency":"USD","toCurrency":"EUR","amount":"1e19"}`,
		"huge exponent":      `{"fromCurrency":"USD","toCurrency":"EUR","amount":"1e10000000"}`,
		"just over bound":    `{"fromCurrency":"USD","toCurrency":"EUR","amount":"10000000000"}`,
	}
	for name, body := range cases {
		s.Run(name, func() {
			start := time.Now()
			w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser), body)

			s.Less(time.Since(start), time.Second)
			s.Equal(http.StatusBadRequest, w.Code)
			s.Equal("must be less than 1e10", s.decodeError(w).Errors["amount"])
		})
	}

	s.Run("too many decimal places", func() {
		w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser),
			`{"fromCurrency":"USD","toCurrency":"EUR","amount":"1.123456789"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("must have at most 8 decimal places", s.decodeError(w).Errors["amount"])
	})

	s.mockExchangeService.AssertNotCalled(s.T(), "ApplyExchange", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestApplyExchange_LargestAmountIsAccepted() {
	s.mockExchangeService.On("ApplyExchange", mock.Anything,
		mock.MatchedBy(func(r dto.ApplyExchangeRequest) bool { return r.Amount.String() == "9999999999.99999999" }),
	).Return(&domain.AuditLogEntry{AuditLogID: "a-1", ActingUser: "alice"}, nil).Once()

	w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser),
		`{"fromCurrency":"USD","toCurrency":"EUR","amount":"9999999999.99999999"}`)

	s.Equal(http.StatusOK, w.Code)
	s.mockExchangeService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestApplyExchange_UnparseableAmountHidesDecoderDetail() {
	w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser),
		`{"fromCurrency":"USD","toCurrency":"EUR","amount":"abc"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	resp := s.decodeError(w)
	s.Equal("Validation Error", resp.Error)
	s.Equal("request could not be parsed", resp.Message)
	s.NotContains(w.Body.String(), "abc")
	s.NotContains(w.Body.String(), "convert")
	s.mockExchangeService.AssertNotCalled(s.T(), "ApplyExchange", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestApplyExchange_RateNotFound() {
	s.mockExchangeService.On("ApplyExchange", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrRateNotFound).Once()

	w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser),
		`{"fromCurrency":"USD","toCurrency":"JPY","amount":"10"}`)

	s.Equal(http.StatusNotFound, w.Code)
	resp := s.decodeError(w)
	s.Equal("Rate Not Found", resp.Error)
	s.Equal(http.StatusNotFound, resp.Status)
	s.False(resp.Timestamp.IsZero())
}

func (s *HandlersTestSuite) TestApplyExchange_InternalErrorHidesDetail() {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	s.mockExchangeService.On("ApplyExchange", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to apply exchange", cause)).Once()

	w := s.do(http.MethodPost, "/exchange/apply", s.tokenFor("alice", domain.RoleUser),
		`{"fromCurrency":"USD","toCurrency":"EUR","amount":"10"}`)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("an unexpected error occurred", s.decodeError(w).Message)
	s.NotContains(w.Body.String(), "10.0.0.5")
}

func (s *HandlersTestSuite) TestCreateExchangeRate() {
	created := &domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.92"),
		CreatedAt:        time.Now().UTC(),
		LastUpdatedAt:    time.Now().UTC(),
	}

	s.Run("created", func() {
		s.mockExchangeRateService.On("CreateExchangeRate", mock.Anything,
			mock.MatchedBy(func(r dto.CreateExchangeRateRequest) bool { return r.Rate.Equal(created.Rate) }),
		).Return(created, nil).Once()

		w := s.do(http.MethodPost, "/exchange-rate", s.tokenFor("bob", domain.RoleUser),
			`{"fromCurrency":"USD","toCurrency":"EUR","rate":"0.92"}`)

		s.Equal(http.StatusCreated, w.Code)
		var resp dto.ExchangeRateResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(created.ExchangeRateID, resp.ExchangeRateID)
	})

	s.Run("duplicate pair", func() {
		s.mockExchangeRateService.On("CreateExchangeRate", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewDuplicateError("exchange rate USD->EUR")).Once()

		w := s.do(http.MethodPost, "/exchange-rate", s.tokenFor("bob", domain.RoleUser),
			`{"fromCurrency":"USD","toCurrency":"EUR","rate":"0.95"}`)

		s.Equal(http.StatusConflict, w.Code)
		s.Equal("Already Exists", s.decodeError(w).Error)
	})

	s.Run("rate out of range", func() {
		for body, want := range map[string]string{
			`{"fromCurrency":"USD","toCurrency":"EUR","rate":"1e8"}`:             "must be less than 1e8",
			`{"fromCurrency":"USD","toCurrency":"EUR","rate":"1e10000000"}`:      "must be less than 1e8",
			`{"fromCurrency":"USD","toCurrency":"EUR","rate":"0.1234567890123"}`: "must have at most 12 decimal places",
		} {
			w := s.do(http.MethodPost, "/exchange-rate", s.tokenFor("bob", domain.RoleUser), body)

			s.Equal(http.StatusBadRequest, w.Code)
			s.Equal(want, s.decodeError(w).Errors["rate"])
		}
	})

	s.Run("zero rate", func() {
		w := s.do(http.MethodPost, "/exchange-rate", s.tokenFor("bob", domain.RoleUser),
			`{"fromCurrency":"USD","toCurrency":"EUR","rate":"0"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("must be greater than 0", s.decodeError(w).Errors["rate"])
	})

	s.mockExchangeRateService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestGetExchangeRate_ByPair() {
	rate := &domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.92"),
	}
	s.mockExchangeRateService.On("GetExchangeRate", mock.Anything, "USD", "EUR").Return(rate, nil).Once()

	w := s.do(http.MethodGet, "/exchange-rate?from=USD&to=EUR", s.tokenFor("bob", domain.RoleUser), nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRateResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(rate.ExchangeRateID, resp.ExchangeRateID)
	s.mockExchangeRateService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestGetExchangeRate_MissingQuery() {
	w := s.do(http.MethodGet, "/exchange-rate?from=USD", s.tokenFor("bob", domain.RoleUser), nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("is required", s.decodeError(w).Errors["to"])
}

func (s *HandlersTestSuite) TestListAndDeleteExchangeRates() {
	s.mockExchangeRateService.On("ListExchangeRates", mock.Anything).Return([]domain.ExchangeRate{}, nil).Once()
	w := s.do(http.MethodGet, "/exchange-rate/all", s.tokenFor("bob", domain.RoleUser), nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())

	id := uuid.NewString()
	s.mockExchangeRateService.On("DeleteExchangeRate", mock.Anything, id).Return(nil).Once()
	w = s.do(http.MethodDelete, "/exchange-rate/"+id, s.tokenFor("bob", domain.RoleUser), nil)
	s.Equal(http.StatusNoContent, w.Code)

	missing := uuid.NewString()
	s.mockExchangeRateService.On("DeleteExchangeRate", mock.Anything, missing).
		Return(apperrors.NewNotFoundError("exchange rate "+missing)).Once()
	w = s.do(http.MethodDelete, "/exchange-rate/"+missing, s.tokenFor("bob", domain.RoleUser), nil)
	s.Equal(http.StatusNotFound, w.Code)

	s.mockExchangeRateService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestUpdateExchangeRate() {
	id := uuid.NewString()
	updated := &domain.ExchangeRate{
		ExchangeRateID:   id,
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.95"),
	}
	s.mockExchangeRateService.On("UpdateExchangeRate", mock.Anything, id,
		mock.MatchedBy(func(r dto.UpdateExchangeRateRequest) bool { return r.Rate.Equal(updated.Rate) }),
	).Return(updated, nil).Once()

	w := s.do(http.MethodPut, "/exchange-rate/"+id, s.tokenFor("bob", domain.RoleUser), `{"rate":"0.95"}`)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRateResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Rate.Equal(updated.Rate))
	s.mockExchangeRateService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestAdminRoutes_RoleChecks() {
	s.Run("anonymous", func() {
		w := s.do(http.MethodGet, "/db/audit-logs", "", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("user without ADMIN", func() {
		w := s.do(http.MethodGet, "/db/exchange-rates", s.tokenFor("bob", domain.RoleUser), nil)
		s.Equal(http.StatusForbidden, w.Code)
		s.Equal("Forbidden", s.decodeError(w).Error)
	})

	s.mockAuditService.AssertNotCalled(s.T(), "ListAuditLogs", mock.Anything, mock.Anything)
	s.mockExchangeRateService.AssertNotCalled(s.T(), "ListExchangeRates", mock.Anything)
}

func (s *HandlersTestSuite) TestAdminRoutes_ListAuditLogs() {
	next := "opaque-token"
	expected := &dto.ListAuditLogsResponse{
		AuditLogs: []dto.AuditLogResponse{{ID: uuid.NewString(), User: "alice", FromCurrency: "USD", ToCurrency: "EUR"}},
		NextToken: &next,
	}
	s.mockAuditService.On("ListAuditLogs", mock.Anything,
		mock.MatchedBy(func(p dto.ListAuditLogsParams) bool { return p.Limit == 10 && p.NextToken == nil }),
	).Return(expected, nil).Once()

	w := s.do(http.MethodGet, "/db/audit-logs?limit=10", s.tokenFor("root", domain.RoleAdmin, domain.RoleUser), nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListAuditLogsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.AuditLogs, 1)
	s.Equal("alice", resp.AuditLogs[0].User)
	s.Require().NotNil(resp.NextToken)
	s.Equal(next, *resp.NextToken)
	s.mockAuditService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestAdminRoutes_LimitOutOfRange() {
	w := s.do(http.MethodGet, "/db/audit-logs?limit=5000", s.tokenFor("root", domain.RoleAdmin), nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("must be at most 500", s.decodeError(w).Errors["limit"])
}

func (s *HandlersTestSuite) TestAdminRoutes_UnparseableLimitHidesParserDetail() {
	w := s.do(http.MethodGet, "/db/audit-logs?limit=abc", s.tokenFor("root", domain.RoleAdmin), nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("request could not be parsed", s.decodeError(w).Message)
	s.NotContains(w.Body.String(), "strconv")
	s.mockAuditService.AssertNotCalled(s.T(), "ListAuditLogs", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestLogin() {
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	s.Run("success", func() {
		s.mockAuthService.On("Login", mock.Anything, dto.LoginRequest{Username: "alice", Password: "s3cret"}).
			Return(&dto.LoginResponse{Token: "signed", TokenType: "Bearer", Username: "alice", ExpiresAt: expiresAt}, nil).Once()

		w := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "alice", Password: "s3cret"})

		s.Equal(http.StatusOK, w.Code)
		var resp dto.LoginResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("signed", resp.Token)
		s.Equal("Bearer", resp.TokenType)
	})

	s.Run("invalid credentials", func() {
		s.mockAuthService.On("Login", mock.Anything, dto.LoginRequest{Username: "alice", Password: "wrong"}).
			Return(nil, apperrors.ErrInvalidCredentials).Once()

		w := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "alice", Password: "wrong"})

		s.Equal(http.StatusUnauthorized, w.Code)
		s.Equal("invalid username or password", s.decodeError(w).Message)
	})

	s.Run("missing fields", func() {
		w := s.do(http.MethodPost, "/auth/login", "", `{}`)

		s.Equal(http.StatusBadRequest, w.Code)
		resp := s.decodeError(w)
		s.Equal("is required", resp.Errors["username"])
		s.Equal("is required", resp.Errors["password"])
	})

	s.mockAuthService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestGoogleLogin_DisabledWithoutClientID() {
	w := s.do(http.MethodPost, "/auth/google", "", `{"idToken":"abc"}`)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestGoogleLogin_Enabled() {
	s.cfg.GoogleClientID = "client-id.apps.googleusercontent.com"
	s.router = s.newRouter(nil)

	s.mockAuthService.On("LoginWithGoogle", mock.Anything, dto.GoogleLoginRequest{IDToken: "google-token"}).
		Return(&dto.LoginResponse{Token: "signed", TokenType: "Bearer", Username: "alice@example.com"}, nil).Once()

	w := s.do(http.MethodPost, "/auth/google", "", `{"idToken":"google-token"}`)

	s.Equal(http.StatusOK, w.Code)
	s.mockAuthService.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestLogin_RateLimited() {
	loginLimiter, err := middleware.NewInMemoryLimiter("2-M")
	s.Require().NoError(err)
	s.router = s.newRouter(loginLimiter)

	s.mockAuthService.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidCredentials).Twice()

	for i := 0; i < 2; i++ {
		w := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "alice", Password: "guess"})
		s.Equal(http.StatusUnauthorized, w.Code)
	}

	w := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "alice", Password: "guess"})
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal("0", w.Header().Get("X-RateLimit-Remaining"))
	s.mockAuthService.AssertExpectations(s.T())
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
