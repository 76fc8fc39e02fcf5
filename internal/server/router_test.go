package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smb-accounting/internal/config"
	"smb-accounting/internal/middleware"
	"smb-accounting/internal/models"
	"smb-accounting/internal/services"
	"smb-accounting/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type fakeHealth struct{ err error }

func (f fakeHealth) HealthCheck(ctx context.Context) error { return f.err }

type RouterTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	ledger          *service_mocks.MockLedgerServiceInterface
	reconciliations *service_mocks.MockReconciliationServiceInterface
	reports         *service_mocks.MockReportServiceInterface
	budgets         *service_mocks.MockBudgetServiceInterface
	alerts          *service_mocks.MockAlertServiceInterface
	alertConfigs    *service_mocks.MockAlertConfigurationServiceInterface
	tokens          services.TokenServiceInterface
	cfg             *config.Config
	registry        *prometheus.Registry
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.reconciliations = service_mocks.NewMockReconciliationServiceInterface(s.ctrl)
	s.reports = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.budgets = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.alerts = service_mocks.NewMockAlertServiceInterface(s.ctrl)
	s.alertConfigs = service_mocks.NewMockAlertConfigurationServiceInterface(s.ctrl)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	s.tokens = services.NewTokenService(&config.JWTConfig{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Issuer:     "smb-accounting",
	})

	s.cfg = &config.Config{Server: config.ServerConfig{Environment: "testing"}}
	s.registry = prometheus.NewRegistry()
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) router(health error, limiter *middleware.RateLimiter) *echo.Echo {
	return NewRouter(s.cfg, Dependencies{
		Ledger:          s.ledger,
		Reconciliations: s.reconciliations,
		Reports:         s.reports,
		Budgets:         s.budgets,
		Alerts:          s.alerts,
		AlertConfigs:    s.alertConfigs,
		Tokens:          s.tokens,
		Health:          fakeHealth{err: health},
		RateLimiter:     limiter,
		MetricsSource:   s.registry,
	})
}

func (s *RouterTestSuite) do(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) token(userID uuid.UUID) string {
	token, _, err := s.tokens.IssueAccessToken(userID, time.Hour)
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(s.router(nil, nil), http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *RouterTestSuite) TestHealth_DatabaseDown() {
	rec := s.do(s.router(errors.New("connection refused"), nil), http.MethodGet, "/health", "")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_003")
}

func (s *RouterTestSuite) TestMetrics() {
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_total", Help: "test"})
	s.registry.MustRegister(counter)
	counter.Inc()

	rec := s.do(s.router(nil, nil), http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "router_test_total 1")
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.do(s.router(nil, nil), http.MethodGet, "/nope", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_006")
}

func (s *RouterTestSuite) TestAPIRequiresToken() {
	rec := s.do(s.router(nil, nil), http.MethodGet, "/api/v1/transactions", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *RouterTestSuite) TestListTransactions_ScopedToTokenSubject() {
	userID := uuid.New()
	s.ledger.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Require().NotNil(filters.UserID)
			s.Equal(userID, *filters.UserID)
			return []models.Transaction{}, 0, nil
		})

	rec := s.do(s.router(nil, nil), http.MethodGet, "/api/v1/transactions", s.token(userID))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestGenerateReportRouteIsNotAnID() {
	s.reports.EXPECT().
		GenerateReport(gomock.Any(), models.ReportTypeIncomeStatement, gomock.Any(), gomock.Any()).
		Return(models.ReportData{"net_income": "0.00"}, nil)

	rec := s.do(s.router(nil, nil), http.MethodGet,
		"/api/v1/reports/generate?type=INCOME_STATEMENT&start_date=2024-01-01&end_date=2024-01-31",
		s.token(uuid.New()))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "net_income")
}

func (s *RouterTestSuite) TestMarkAllAlertsReadRouteIsNotAnID() {
	userID := uuid.New()
	s.alerts.EXPECT().MarkAllAsRead(gomock.Any(), userID).Return(int64(3), nil)

	rec := s.do(s.router(nil, nil), http.MethodPatch, "/api/v1/alerts/read-all", s.token(userID))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestReconciliationRoutes() {
	userID := uuid.New()
	reconciliationID := uuid.New()
	transactionID := uuid.New()
	transaction := &models.Transaction{ID: transactionID, ReconciliationID: &reconciliationID}

	s.reconciliations.EXPECT().
		AttachTransaction(gomock.Any(), reconciliationID, transactionID, userID).
		Return(transaction, nil)
	s.reconciliations.EXPECT().
		DetachTransaction(gomock.Any(), transactionID, userID).
		Return(&models.Transaction{ID: transactionID}, nil)
	s.reconciliations.EXPECT().
		CompleteReconciliation(gomock.Any(), reconciliationID, userID).
		Return(&models.Reconciliation{ID: reconciliationID, Status: models.ReconciliationStatusCompleted}, nil)

	e := s.router(nil, nil)
	token := s.token(userID)

	rec := s.do(e, http.MethodPost, "/api/v1/reconciliations/"+reconciliationID.String()+"/transactions/"+transactionID.String(), token)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(e, http.MethodDelete, "/api/v1/reconciliations/transactions/"+transactionID.String(), token)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(e, http.MethodPatch, "/api/v1/reconciliations/"+reconciliationID.String()+"/complete", token)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), models.ReconciliationStatusCompleted)
}

func (s *RouterTestSuite) TestBudgetReportRoute() {
	userID := uuid.New()
	budgetID := uuid.New()
	s.budgets.EXPECT().
		GetBudgetReport(gomock.Any(), budgetID, userID).
		Return(&models.BudgetReport{Budget: models.Budget{ID: budgetID}}, nil)

	rec := s.do(s.router(nil, nil), http.MethodGet, "/api/v1/budgets/"+budgetID.String()+"/report", s.token(userID))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "percentageUsed")
}

func (s *RouterTestSuite) TestRateLimited() {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2})
	e := s.router(nil, limiter)

	s.Equal(http.StatusOK, s.do(e, http.MethodGet, "/health", "").Code)
	s.Equal(http.StatusOK, s.do(e, http.MethodGet, "/health", "").Code)

	rec := s.do(e, http.MethodGet, "/health", "")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_005")
}
