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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	handler    *TransactionHandler
	echo       *echo.Echo
	accountID  uuid.UUID
	userID     uuid.UUID
	ctrl       *gomock.Controller
	mockLedger *service_mocks.MockLedgerServiceInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.accountID = uuid.New()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockLedger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockLedger)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func (s *TransactionHandlerTestSuite) sampleTransaction(amount string) *models.Transaction {
	return &models.Transaction{
		ID:          uuid.New(),
		AccountID:   s.accountID,
		UserID:      s.userID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.RequireFromString(amount),
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: gofakeit.Sentence(4),
		Reference:   models.GenerateTransactionReference(),
		Version:     1,
	}
}

func (s *TransactionHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := s.sampleTransaction("42.5")
	created.Category = ""

	s.mockLedger.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, input services.CreateTransactionInput) (*models.Transaction, error) {
			s.Equal(s.userID, input.UserID)
			s.Equal(s.accountID, input.AccountID)
			s.Equal(models.TransactionTypeExpense, input.Type)
			s.True(input.Amount.Equal(decimal.RequireFromString("42.50")))
			return created, nil
		})

	body := fmt.Sprintf(`{"account_id":"%s","type":"EXPENSE","amount":"42.50","description":"Printer paper"}`, s.accountID)
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(created.ID, response.ID)
	s.Equal("42.50", response.Amount)
	s.Equal(models.UncategorizedCategory, response.Category)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrors() {
	testCases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"account_id":`},
		{"zero amount", fmt.Sprintf(`{"account_id":"%s","type":"INCOME","amount":"0"}`, s.accountID)},
		{"transfer type", fmt.Sprintf(`{"account_id":"%s","type":"TRANSFER","amount":"10"}`, s.accountID)},
		{"missing account", `{"type":"INCOME","amount":"10"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", tc.body)

			s.NoError(s.handler.CreateTransaction(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"account not found", services.ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_001"},
		{"closed reconciliation", services.ErrReconciliationClosed, http.StatusConflict, "RECONCILIATION_002"},
		{"sub-cent amount", services.ErrInvalidAmountPrecision, http.StatusBadRequest, "TRANSACTION_006"},
		{"database failure", fmt.Errorf("failed to apply balance delta: %w", gofakeit.Error()), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockLedger.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			body := fmt.Sprintf(`{"account_id":"%s","type":"INCOME","amount":"10"}`, s.accountID)
			c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)

			s.NoError(s.handler.CreateTransaction(c))
			s.Equal(tc.status, rec.Code)
			response := s.decodeError(rec)
			s.Equal(tc.code, response.Error.Code)
			s.Equal("trace-test", response.Error.TraceID)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ForeignAccountIsNotFound() {
	foreignAccount := uuid.New()
	s.mockLedger.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, input services.CreateTransactionInput) (*models.Transaction, error) {
			s.Equal(s.userID, input.UserID, "the acting user always comes from the token")
			s.Equal(foreignAccount, input.AccountID)
			return nil, services.ErrAccountNotFound
		})

	body := fmt.Sprintf(`{"account_id":"%s","user_id":"%s","type":"EXPENSE","amount":"900"}`, foreignAccount, uuid.New())
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", body)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ACCOUNT_001", s.decodeError(rec).Error.Code)
	s.NotContains(rec.Body.String(), "balance")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MissingUser() {
	body := fmt.Sprintf(`{"account_id":"%s","type":"INCOME","amount":"10"}`, s.accountID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Pagination() {
	transactions := make([]models.Transaction, 5)
	for i := range transactions {
		transactions[i] = *s.sampleTransaction(fmt.Sprintf("%d.00", 10+i))
	}

	s.mockLedger.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Require().NotNil(filters.UserID)
			s.Equal(s.userID, *filters.UserID)
			s.Require().NotNil(filters.AccountID)
			s.Equal(s.accountID, *filters.AccountID)
			s.Require().NotNil(filters.Type)
			s.Equal("EXPENSE", *filters.Type)
			s.Equal(5, filters.Limit)
			s.Equal(10, filters.Offset)
			s.Equal(models.SortByDateAsc, filters.SortBy)
			s.Require().NotNil(filters.EndDate)
			s.Equal(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), *filters.EndDate)
			return transactions, 23, nil
		})

	target := fmt.Sprintf("/api/v1/transactions?account_id=%s&type=EXPENSE&limit=5&offset=10&sort=date_asc&start_date=2024-03-01&end_date=2024-03-31", s.accountID)
	c, rec := s.newContext(http.MethodGet, target, "")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Transactions, 5)
	s.True(response.Pagination.HasMore)
	s.Equal(int64(23), response.Pagination.Total)
	s.Equal(10, response.Pagination.Offset)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_LimitIsCapped() {
	s.mockLedger.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(maxPageLimit, filters.Limit)
			s.Equal(models.SortByDateDesc, filters.SortBy)
			return []models.Transaction{}, 0, nil
		})

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions?limit=5000", "")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Empty(response.Transactions)
	s.False(response.Pagination.HasMore)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_BadFilters() {
	for _, query := range []string{"account_id=nope", "start_date=03/01/2024"} {
		s.Run(query, func() {
			c, rec := s.newContext(http.MethodGet, "/api/v1/transactions?"+query, "")

			s.NoError(s.handler.ListTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_003", s.decodeError(rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidType() {
	s.mockLedger.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), services.ErrInvalidTransactionType)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions?type=TRANSFER", "")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("TRANSACTION_003", s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction() {
	transaction := s.sampleTransaction("99.99")
	s.mockLedger.EXPECT().GetTransaction(gomock.Any(), transaction.ID, &s.userID).Return(transaction, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/"+transaction.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("99.99", response.Amount)
	s.Equal(1, response.Version)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_InvalidID() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	s.mockLedger.EXPECT().GetTransaction(gomock.Any(), id, gomock.Any()).Return(nil, services.ErrTransactionNotFound)

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("TRANSACTION_001", s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_PassesChanges() {
	updated := s.sampleTransaction("120.00")
	updated.Version = 3

	s.mockLedger.EXPECT().
		UpdateTransaction(gomock.Any(), updated.ID, &s.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, _ *uuid.UUID, changes services.TransactionChanges) (*models.Transaction, error) {
			s.Require().NotNil(changes.Amount)
			s.True(changes.Amount.Equal(decimal.NewFromInt(120)))
			s.Require().NotNil(changes.ExpectedVersion)
			s.Equal(2, *changes.ExpectedVersion)
			s.Nil(changes.Type)
			s.Nil(changes.Description)
			return updated, nil
		})

	c, rec := s.newContext(http.MethodPatch, "/api/v1/transactions/"+updated.ID.String(), `{"amount":"120","version":2}`)
	c.SetParamNames("id")
	c.SetParamValues(updated.ID.String())

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(3, response.Version)
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_Conflicts() {
	testCases := []struct {
		name string
		err  error
		code string
	}{
		{"reconciled", services.ErrTransactionReconciled, "TRANSACTION_004"},
		{"stale version", services.ErrConcurrentModification, "TRANSACTION_005"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			id := uuid.New()
			s.mockLedger.EXPECT().UpdateTransaction(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := s.newContext(http.MethodPatch, "/api/v1/transactions/"+id.String(), `{"description":"fixed"}`)
			c.SetParamNames("id")
			c.SetParamValues(id.String())

			s.NoError(s.handler.UpdateTransaction(c))
			s.Equal(http.StatusConflict, rec.Code)
			s.Equal(tc.code, s.decodeError(rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_RejectsNegativeAmount() {
	id := uuid.New()
	c, rec := s.newContext(http.MethodPatch, "/api/v1/transactions/"+id.String(), `{"amount":"-5"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction() {
	id := uuid.New()
	s.mockLedger.EXPECT().DeleteTransaction(gomock.Any(), id, &s.userID).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_Unavailable() {
	id := uuid.New()
	s.mockLedger.EXPECT().
		DeleteTransaction(gomock.Any(), id, gomock.Any()).
		Return(fmt.Errorf("%w: connection reset", services.ErrUnavailable))

	c, rec := s.newContext(http.MethodDelete, "/api/v1/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("SYSTEM_003", s.decodeError(rec).Error.Code)
}
