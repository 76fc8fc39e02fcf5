package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smb-accounting/internal/dto"
	"smb-accounting/internal/models"
	"smb-accounting/internal/services"
	"smb-accounting/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	handler     *ReportHandler
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockReports *service_mocks.MockReportServiceInterface
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockReports = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockReports)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	return c, rec
}

func (s *ReportHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *ReportHandlerTestSuite) storedReport() *models.FinancialReport {
	return &models.FinancialReport{
		ID:        uuid.New(),
		Name:      gofakeit.Company() + " Q1",
		Type:      models.ReportTypeIncomeStatement,
		Period:    models.ReportPeriodQuarterly,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		Data:      models.ReportData{"total_income": "500.00"},
	}
}

func (s *ReportHandlerTestSuite) TestGenerateReport() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	s.mockReports.EXPECT().
		GenerateReport(gomock.Any(), models.ReportTypeCashFlow, start, end).
		Return(models.ReportData{"net_cash_flow": "120.00"}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports/generate?type=CASH_FLOW&start_date=2024-01-01&end_date=2024-01-31", "")

	s.NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GenerateReportResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.ReportTypeCashFlow, response.Type)
	s.Equal("120.00", response.Data["net_cash_flow"])
}

func (s *ReportHandlerTestSuite) TestGenerateReport_MissingParameters() {
	testCases := []struct {
		name  string
		query string
		code  string
	}{
		{"no type", "start_date=2024-01-01&end_date=2024-01-31", "VALIDATION_002"},
		{"no window", "type=CASH_FLOW", "VALIDATION_002"},
		{"bad date", "type=CASH_FLOW&start_date=yesterday&end_date=2024-01-31", "VALIDATION_005"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(http.MethodGet, "/api/v1/reports/generate?"+tc.query, "")

			s.NoError(s.handler.GenerateReport(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tc.code, s.errorCode(rec))
		})
	}
}

func (s *ReportHandlerTestSuite) TestGenerateReport_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"inverted window", services.ErrInvalidReportWindow, http.StatusBadRequest, "REPORT_003"},
		{"unknown type", services.ErrUnsupportedReportType, http.StatusBadRequest, "REPORT_002"},
		{"breaker open", fmt.Errorf("%w: %w", services.ErrUnavailable, services.ErrCircuitBreakerOpen), http.StatusServiceUnavailable, "SYSTEM_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockReports.EXPECT().GenerateReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := s.newContext(http.MethodGet, "/api/v1/reports/generate?type=INCOME_STATEMENT&start_date=2024-02-01&end_date=2024-01-01", "")

			s.NoError(s.handler.GenerateReport(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, s.errorCode(rec))
		})
	}
}

func (s *ReportHandlerTestSuite) TestCreateReport() {
	report := s.storedReport()

	s.mockReports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, input services.CreateReportInput) (*models.FinancialReport, error) {
			s.Equal("Q1", input.Name)
			s.Equal(models.ReportTypeIncomeStatement, input.Type)
			s.Equal(models.ReportPeriodQuarterly, input.Period)
			return report, nil
		})

	body := `{"name":"Q1","type":"INCOME_STATEMENT","period":"QUARTERLY","start_date":"2024-01-01T00:00:00Z","end_date":"2024-03-31T23:59:59Z"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/reports", body)

	s.NoError(s.handler.CreateReport(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response models.FinancialReport
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(report.ID, response.ID)
	s.Equal("500.00", response.Data["total_income"])
}

func (s *ReportHandlerTestSuite) TestCreateReport_InvalidBody() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/reports", `{"name":"","type":"FORECAST"}`)

	s.NoError(s.handler.CreateReport(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *ReportHandlerTestSuite) TestListReports_WithType() {
	reports := []models.FinancialReport{*s.storedReport(), *s.storedReport()}
	reportType := models.ReportTypeIncomeStatement
	s.mockReports.EXPECT().ListReports(gomock.Any(), &reportType).Return(reports, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports?type=INCOME_STATEMENT", "")

	s.NoError(s.handler.ListReports(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []models.FinancialReport `json:"data"`
		Meta map[string]int           `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Data, 2)
	s.Equal(2, response.Meta["count"])
}

func (s *ReportHandlerTestSuite) TestListReports_NoFilter() {
	s.mockReports.EXPECT().ListReports(gomock.Any(), gomock.Nil()).Return([]models.FinancialReport{}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports", "")

	s.NoError(s.handler.ListReports(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerTestSuite) TestGetReport_NotFound() {
	id := uuid.New()
	s.mockReports.EXPECT().GetReport(gomock.Any(), id).Return(nil, services.ErrReportNotFound)

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.GetReport(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("REPORT_001", s.errorCode(rec))
}

func (s *ReportHandlerTestSuite) TestUpdateReport_PassesOnlySentFields() {
	report := s.storedReport()

	s.mockReports.EXPECT().
		RegenerateReport(gomock.Any(), report.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, changes services.ReportChanges) (*models.FinancialReport, error) {
			s.Require().NotNil(changes.Name)
			s.Equal("Renamed", *changes.Name)
			s.Nil(changes.Type)
			s.Nil(changes.StartDate)
			s.Nil(changes.EndDate)
			return report, nil
		})

	c, rec := s.newContext(http.MethodPatch, "/api/v1/reports/"+report.ID.String(), `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues(report.ID.String())

	s.NoError(s.handler.UpdateReport(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerTestSuite) TestDeleteReport() {
	id := uuid.New()
	s.mockReports.EXPECT().DeleteReport(gomock.Any(), id).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/reports/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteReport(c))
	s.Equal(http.StatusNoContent, rec.Code)
}
