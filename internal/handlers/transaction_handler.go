package handlers

import (
	"net/http"

	"smb-accounting/internal/dto"
	"smb-accounting/internal/errors"
	"smb-accounting/internal/models"
	"smb-accounting/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledger services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledger services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// CreateTransaction records a transaction and moves the account balance
// @Summary Create transaction
// @Description Record an INCOME or EXPENSE against one of the caller's accounts. The account balance moves in the same database transaction.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or TRANSACTION_002 - Invalid amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "RECONCILIATION_002 - Reconciliation already completed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	transaction, err := h.ledger.CreateTransaction(c.Request().Context(), services.CreateTransactionInput{
		AccountID:        req.AccountID,
		UserID:           userID,
		Type:             req.Type,
		Amount:           req.Amount,
		Date:             req.Date,
		Category:         req.Category,
		Description:      req.Description,
		Reference:        req.Reference,
		ReconciliationID: req.ReconciliationID,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// ListTransactions returns the caller's transactions
// @Summary List transactions
// @Description Offset-paginated list of the caller's transactions, newest first unless sort=date_asc
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param account_id query string false "Filter by account ID (UUID)"
// @Param type query string false "Filter by transaction type" Enums(INCOME, EXPENSE)
// @Param category query string false "Filter by category"
// @Param start_date query string false "Filter by start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Filter by end date, inclusive (YYYY-MM-DD or RFC3339)"
// @Param sort query string false "Sort order" Enums(date_desc, date_asc)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Param offset query int false "Number of results to skip" default(0)
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid filter or TRANSACTION_003 - Invalid type"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	filters.UserID = &userID

	transactions, total, err := h.ledger.ListTransactions(c.Request().Context(), filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	response := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Pagination: dto.PaginationInfo{
			HasMore: int64(filters.Offset+len(transactions)) < total,
			Limit:   filters.Limit,
			Offset:  filters.Offset,
			Total:   total,
		},
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, toTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, response)
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	transaction, err := h.ledger.GetTransaction(c.Request().Context(), id, &userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// UpdateTransaction amends a transaction and rebalances its account
// @Summary Update transaction
// @Description Partial update. Changing amount or type moves the account balance by the difference. Send version to guard against concurrent edits.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Reconciled or TRANSACTION_005 - Concurrent modification"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	transaction, err := h.ledger.UpdateTransaction(c.Request().Context(), id, &userID, services.TransactionChanges{
		Amount:          req.Amount,
		Type:            req.Type,
		Date:            req.Date,
		Category:        req.Category,
		Description:     req.Description,
		ExpectedVersion: req.Version,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction reverses and removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Transaction is reconciled"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := h.ledger.DeleteTransaction(c.Request().Context(), id, &userID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseTransactionFilters parses list query parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Type:     optionalQuery(c, "type"),
		Category: optionalQuery(c, "category"),
		SortBy:   models.SortByDateDesc,
		Limit:    getIntParam(c, "limit", defaultPageLimit),
		Offset:   getIntParam(c, "offset", 0),
	}

	if filters.Limit < 1 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	if sort := c.QueryParam("sort"); sort == models.SortByDateAsc {
		filters.SortBy = models.SortByDateAsc
	}

	if raw := c.QueryParam("account_id"); raw != "" {
		accountID, err := uuidFromString(raw)
		if err != nil {
			return filters, err
		}
		filters.AccountID = &accountID
	}

	var err error
	if filters.StartDate, err = parseOptionalDate(c, "start_date", false); err != nil {
		return filters, err
	}
	if filters.EndDate, err = parseOptionalDate(c, "end_date", true); err != nil {
		return filters, err
	}

	return filters, nil
}

func toTransactionResponse(t *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:               t.ID,
		AccountID:        t.AccountID,
		Type:             t.Type,
		Amount:           t.Amount.StringFixed(2),
		Date:             t.Date,
		Category:         t.CategoryOrDefault(),
		Description:      t.Description,
		Reference:        t.Reference,
		ReconciliationID: t.ReconciliationID,
		Version:          t.Version,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
