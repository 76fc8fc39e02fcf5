package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"smb-accounting/internal/database"
	"smb-accounting/internal/models"
	"smb-accounting/internal/repositories"
	"smb-accounting/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	january    = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	endOfMonth = time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)
)

// ReportServiceTestSuite aggregates over SQLite-backed repositories
type ReportServiceTestSuite struct {
	suite.Suite
	db              *database.DB
	ctx             context.Context
	service         ReportServiceInterface
	reportRepo      repositories.ReportRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	user            *models.User
	account         *models.Account
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.reportRepo = repositories.NewReportRepository(s.db.DB)
	s.transactionRepo = repositories.NewTransactionRepository(s.db.DB)

	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	auditLogger := NewAuditLogger(discardLogger())
	s.service = NewReportService(
		s.reportRepo,
		s.transactionRepo,
		repositories.NewAccountRepository(s.db.DB),
		NewReportCircuitBreaker(DefaultCircuitBreakerConfig(), metrics, auditLogger),
		metrics,
		auditLogger,
		discardLogger(),
	)

	s.user = database.CreateTestUser(s.T(), s.db, "reports@example.com")
	s.account = database.CreateTestAccount(s.T(), s.db, s.user, "Operating", decimal.NewFromInt(1000))
}

func (s *ReportServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) record(txType string, amount int64, category string, date time.Time) {
	s.Require().NoError(s.transactionRepo.Create(s.ctx, &models.Transaction{
		AccountID: s.account.ID,
		UserID:    s.user.ID,
		Type:      txType,
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		Date:      date,
	}))
}

func (s *ReportServiceTestSuite) TestIncomeStatement() {
	s.record(models.TransactionTypeIncome, 500, "Sales", january.AddDate(0, 0, 4))
	s.record(models.TransactionTypeExpense, 200, "Rent", january.AddDate(0, 0, 9))
	s.record(models.TransactionTypeIncome, 999, "Sales", january.AddDate(0, 2, 0))

	data, err := s.service.GenerateReport(s.ctx, models.ReportTypeIncomeStatement, january, endOfMonth)
	s.Require().NoError(err)

	var statement models.IncomeStatement
	s.Require().NoError(data.Decode(&statement))

	s.True(statement.Summary.TotalIncome.Equal(decimal.NewFromInt(500)))
	s.True(statement.Summary.TotalExpenses.Equal(decimal.NewFromInt(200)))
	s.True(statement.Summary.NetIncome.Equal(decimal.NewFromInt(300)))
	s.Len(statement.IncomeByCategory, 1)
	s.True(statement.IncomeByCategory["Sales"].Equal(decimal.NewFromInt(500)))
	s.Len(statement.ExpensesByCategory, 1)
	s.True(statement.ExpensesByCategory["Rent"].Equal(decimal.NewFromInt(200)))
	s.Equal(1, statement.IncomeTransactions)
	s.Equal(1, statement.ExpenseTransactions)
}

func (s *ReportServiceTestSuite) TestIncomeStatement_EmptyWindow() {
	data, err := s.service.GenerateReport(s.ctx, models.ReportTypeIncomeStatement, january, endOfMonth)
	s.Require().NoError(err)

	var statement models.IncomeStatement
	s.Require().NoError(data.Decode(&statement))
	s.True(statement.Summary.NetIncome.IsZero())
	s.NotNil(statement.IncomeByCategory)
	s.Empty(statement.IncomeByCategory)
}

func (s *ReportServiceTestSuite) TestBalanceSheet() {
	database.CreateTestAccount(s.T(), s.db, s.user, "Reserve", decimal.RequireFromString("250.50"))

	data, err := s.service.GenerateReport(s.ctx, models.ReportTypeBalanceSheet, january, endOfMonth)
	s.Require().NoError(err)

	var sheet models.BalanceSheet
	s.Require().NoError(data.Decode(&sheet))
	s.True(sheet.Assets.Total.Equal(decimal.RequireFromString("1250.50")))
	s.True(sheet.Assets.ByType[models.AccountTypeChecking].Equal(decimal.RequireFromString("1250.50")))
	s.True(sheet.Liabilities.Total.IsZero())
	s.True(sheet.Equity.Total.Equal(sheet.Assets.Total))
	s.Len(sheet.Assets.Accounts, 2)
	s.Equal("Operating", sheet.Assets.Accounts[0].Name)
	s.True(sheet.Date.Equal(endOfMonth))
}

func (s *ReportServiceTestSuite) TestCashFlowBucketsByMonth() {
	s.record(models.TransactionTypeIncome, 400, "Sales", january.AddDate(0, 0, 2))
	s.record(models.TransactionTypeExpense, 100, "Rent", january.AddDate(0, 0, 20))
	s.record(models.TransactionTypeExpense, 50, "", january.AddDate(0, 1, 3))

	data, err := s.service.GenerateReport(s.ctx, models.ReportTypeCashFlow, january, january.AddDate(0, 2, 0))
	s.Require().NoError(err)

	var flow models.CashFlow
	s.Require().NoError(data.Decode(&flow))
	s.Equal(3, flow.TransactionCount)
	s.True(flow.Summary.Inflow.Equal(decimal.NewFromInt(400)))
	s.True(flow.Summary.Outflow.Equal(decimal.NewFromInt(150)))
	s.True(flow.Summary.NetCashFlow.Equal(decimal.NewFromInt(250)))
	s.Require().Len(flow.ByMonth, 2)
	s.True(flow.ByMonth["2024-01"].Net.Equal(decimal.NewFromInt(300)))
	s.True(flow.ByMonth["2024-02"].Outflow.Equal(decimal.NewFromInt(50)))
	s.True(flow.ByMonth["2024-02"].Inflow.IsZero())
}

func (s *ReportServiceTestSuite) TestGenerateIsDeterministic() {
	s.record(models.TransactionTypeIncome, 500, "Sales", january.AddDate(0, 0, 4))
	s.record(models.TransactionTypeExpense, 200, "", january.AddDate(0, 0, 9))

	first, err := s.service.GenerateReport(s.ctx, models.ReportTypeIncomeStatement, january, endOfMonth)
	s.Require().NoError(err)
	second, err := s.service.GenerateReport(s.ctx, models.ReportTypeIncomeStatement, january, endOfMonth)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *ReportServiceTestSuite) TestGenerateRejectsBadInput() {
	_, err := s.service.GenerateReport(s.ctx, "PROFIT_FORECAST", january, endOfMonth)
	s.ErrorIs(err, ErrUnsupportedReportType)

	_, err = s.service.GenerateReport(s.ctx, models.ReportTypeCashFlow, endOfMonth, january)
	s.ErrorIs(err, ErrInvalidReportWindow)
	s.ErrorIs(err, ErrInvalidArgument)
}

func (s *ReportServiceTestSuite) TestCreateAndRegenerate() {
	s.record(models.TransactionTypeIncome, 500, "Sales", january.AddDate(0, 0, 4))

	report, err := s.service.CreateReport(s.ctx, CreateReportInput{
		Name:      "  January  ",
		Type:      models.ReportTypeIncomeStatement,
		StartDate: january,
		EndDate:   endOfMonth,
	})
	s.Require().NoError(err)
	s.Equal("January", report.Name)
	s.Equal(models.ReportPeriodCustom, report.Period)

	stored, err := s.service.GetReport(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Contains(stored.Data, "summary")

	cashFlow := models.ReportTypeCashFlow
	regenerated, err := s.service.RegenerateReport(s.ctx, report.ID, ReportChanges{Type: &cashFlow})
	s.Require().NoError(err)
	s.Equal(models.ReportTypeCashFlow, regenerated.Type)
	s.Contains(regenerated.Data, "byMonth")
	s.NotContains(regenerated.Data, "incomeByCategory")

	reports, err := s.service.ListReports(s.ctx, &cashFlow)
	s.Require().NoError(err)
	s.Len(reports, 1)

	s.Require().NoError(s.service.DeleteReport(s.ctx, report.ID))
	_, err = s.service.GetReport(s.ctx, report.ID)
	s.ErrorIs(err, ErrReportNotFound)
}

func (s *ReportServiceTestSuite) TestCreateReportValidation() {
	_, err := s.service.CreateReport(s.ctx, CreateReportInput{
		Name:      " ",
		Type:      models.ReportTypeIncomeStatement,
		StartDate: january,
		EndDate:   endOfMonth,
	})
	s.ErrorIs(err, ErrInvalidReportName)

	_, err = s.service.CreateReport(s.ctx, CreateReportInput{
		Name:      "Weekly",
		Type:      models.ReportTypeIncomeStatement,
		Period:    "WEEKLY",
		StartDate: january,
		EndDate:   endOfMonth,
	})
	s.ErrorIs(err, ErrInvalidReportPeriod)
}

func (s *ReportServiceTestSuite) TestListReportsRejectsUnknownType() {
	bogus := "FORECAST"
	_, err := s.service.ListReports(s.ctx, &bogus)
	s.ErrorIs(err, ErrUnsupportedReportType)
}

// ReportServiceFailureTestSuite drives store failures through mocks
type ReportServiceFailureTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockReportRepo      *repository_mocks.MockReportRepositoryInterface
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockAccountRepo     *repository_mocks.MockAccountRepositoryInterface
	breaker             CircuitBreakerInterface
	service             ReportServiceInterface
	ctx                 context.Context
}

func (s *ReportServiceFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockReportRepo = repository_mocks.NewMockReportRepositoryInterface(s.ctrl)
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockAccountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour})
	s.service = NewReportService(
		s.mockReportRepo,
		s.mockTransactionRepo,
		s.mockAccountRepo,
		s.breaker,
		NewPrometheusMetrics(prometheus.NewRegistry()),
		NewAuditLogger(discardLogger()),
		discardLogger(),
	)
	s.ctx = context.Background()
}

func (s *ReportServiceFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReportServiceFailureSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceFailureTestSuite))
}

func (s *ReportServiceFailureTestSuite) TestStoreFailureIsUnavailable() {
	s.mockTransactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := s.service.GenerateReport(s.ctx, models.ReportTypeIncomeStatement, january, endOfMonth)

	s.ErrorIs(err, ErrUnavailable)
	s.Equal(1, s.breaker.GetFailureCount())
}

func (s *ReportServiceFailureTestSuite) TestOpenBreakerRejectsWithoutReading() {
	s.mockAccountRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.service.GenerateReport(s.ctx, models.ReportTypeBalanceSheet, january, endOfMonth)
		s.ErrorIs(err, ErrUnavailable)
	}
	s.Equal(StateOpen, s.breaker.GetState())

	_, err := s.service.GenerateReport(s.ctx, models.ReportTypeBalanceSheet, january, endOfMonth)
	s.ErrorIs(err, ErrUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}

func (s *ReportServiceFailureTestSuite) TestCreateStoresNothingWhenGenerationFails() {
	s.mockTransactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := s.service.CreateReport(s.ctx, CreateReportInput{
		Name:      "Q1",
		Type:      models.ReportTypeCashFlow,
		Period:    models.ReportPeriodQuarterly,
		StartDate: january,
		EndDate:   january.AddDate(0, 3, 0),
	})

	s.ErrorIs(err, ErrUnavailable)
}

func (s *ReportServiceFailureTestSuite) TestRenameDoesNotRegenerate() {
	stored := &models.FinancialReport{
		ID:        uuid.New(),
		Name:      "Old",
		Type:      models.ReportTypeIncomeStatement,
		Period:    models.ReportPeriodMonthly,
		StartDate: january,
		EndDate:   endOfMonth,
		Data:      models.ReportData{"summary": map[string]interface{}{}},
	}
	name := "New"
	s.mockReportRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	s.mockReportRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	report, err := s.service.RegenerateReport(s.ctx, stored.ID, ReportChanges{Name: &name})

	s.NoError(err)
	s.Equal("New", report.Name)
	s.Contains(report.Data, "summary")
}

func (s *ReportServiceFailureTestSuite) TestRegenerateRejectsInvertedWindow() {
	stored := &models.FinancialReport{
		ID:        uuid.New(),
		Name:      "January",
		Type:      models.ReportTypeIncomeStatement,
		Period:    models.ReportPeriodMonthly,
		StartDate: january,
		EndDate:   endOfMonth,
	}
	before := january.AddDate(-1, 0, 0)
	s.mockReportRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)

	_, err := s.service.RegenerateReport(s.ctx, stored.ID, ReportChanges{EndDate: &before})

	s.ErrorIs(err, ErrInvalidReportWindow)
}

func (s *ReportServiceFailureTestSuite) TestRegenerateMissingReport() {
	id := uuid.New()
	s.mockReportRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, repositories.ErrReportNotFound)

	_, err := s.service.RegenerateReport(s.ctx, id, ReportChanges{})

	s.ErrorIs(err, ErrReportNotFound)
}
