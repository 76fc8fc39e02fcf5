package handlers

import (
	"net/http"
	"time"

	"smb-accounting/internal/dto"
	"smb-accounting/internal/errors"
	"smb-accounting/internal/models"
	"smb-accounting/internal/services"

	"github.com/labstack/echo/v4"
)

// ReconciliationHandler handles bank statement reconciliation requests
type ReconciliationHandler struct {
	reconciliations services.ReconciliationServiceInterface
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliations services.ReconciliationServiceInterface) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliations: reconciliations}
}

// CreateReconciliation starts a reconciliation for one of the caller's accounts
// @Summary Create reconciliation
// @Tags Reconciliations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReconciliationRequest true "Reconciliation details"
// @Success 201 {object} models.Reconciliation "Reconciliation started"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /reconciliations [post]
func (h *ReconciliationHandler) CreateReconciliation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateReconciliationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	var statementDate time.Time
	if req.StatementDate != nil {
		statementDate = *req.StatementDate
	}

	reconciliation, err := h.reconciliations.CreateReconciliation(c.Request().Context(), services.CreateReconciliationInput{
		AccountID:     req.AccountID,
		UserID:        userID,
		StatementDate: statementDate,
		Note:          req.Note,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, reconciliation)
}

// ListReconciliations returns the caller's reconciliations, latest statement first
// @Summary List reconciliations
// @Tags Reconciliations
// @Security BearerAuth
// @Produce json
// @Param account_id query string false "Filter by account ID (UUID)"
// @Param status query string false "Filter by status" Enums(IN_PROGRESS, COMPLETED)
// @Success 200 {object} SuccessResponse{data=[]models.Reconciliation} "Reconciliations"
// @Failure 400 {object} errors.ErrorResponse "RECONCILIATION_004 - Invalid status"
// @Router /reconciliations [get]
func (h *ReconciliationHandler) ListReconciliations(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters := models.ReconciliationFilters{
		UserID: &userID,
		Status: optionalQuery(c, "status"),
	}
	if raw := c.QueryParam("account_id"); raw != "" {
		accountID, err := uuidFromString(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
		}
		filters.AccountID = &accountID
	}

	reconciliations, err := h.reconciliations.ListReconciliations(c.Request().Context(), filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: reconciliations,
		Meta: map[string]int{"count": len(reconciliations)},
	})
}

// GetReconciliation retrieves one reconciliation
// @Summary Get reconciliation
// @Tags Reconciliations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reconciliation ID (UUID)"
// @Success 200 {object} models.Reconciliation "Reconciliation"
// @Failure 404 {object} errors.ErrorResponse "RECONCILIATION_001 - Reconciliation not found"
// @Router /reconciliations/{id} [get]
func (h *ReconciliationHandler) GetReconciliation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	reconciliation, err := h.reconciliations.GetReconciliation(c.Request().Context(), id, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, reconciliation)
}

// CompleteReconciliation closes a reconciliation and freezes its transactions
// @Summary Complete reconciliation
// @Description Once completed, the reconciliation's transactions can no longer be amended, deleted or detached.
// @Tags Reconciliations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reconciliation ID (UUID)"
// @Success 200 {object} models.Reconciliation "Completed reconciliation"
// @Failure 404 {object} errors.ErrorResponse "RECONCILIATION_001 - Reconciliation not found"
// @Failure 409 {object} errors.ErrorResponse "RECONCILIATION_002 - Reconciliation already completed"
// @Router /reconciliations/{id}/complete [patch]
func (h *ReconciliationHandler) CompleteReconciliation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	reconciliation, err := h.reconciliations.CompleteReconciliation(c.Request().Context(), id, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, reconciliation)
}

// AttachTransaction links a transaction to an in-progress reconciliation
// @Summary Attach transaction
// @Tags Reconciliations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reconciliation ID (UUID)"
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Attached transaction"
// @Failure 400 {object} errors.ErrorResponse "RECONCILIATION_003 - Transaction of another account"
// @Failure 404 {object} errors.ErrorResponse "RECONCILIATION_001 or TRANSACTION_001 - Not found"
// @Failure 409 {object} errors.ErrorResponse "RECONCILIATION_002 - Reconciliation completed or TRANSACTION_004 - Already reconciled"
// @Router /reconciliations/{id}/transactions/{transactionId} [post]
func (h *ReconciliationHandler) AttachTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	transactionID, err := parseUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	transaction, err := h.reconciliations.AttachTransaction(c.Request().Context(), id, transactionID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DetachTransaction unlinks a transaction from its reconciliation
// @Summary Detach transaction
// @Tags Reconciliations
// @Security BearerAuth
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Detached transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Reconciliation already completed"
// @Router /reconciliations/transactions/{transactionId} [delete]
func (h *ReconciliationHandler) DetachTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	transaction, err := h.reconciliations.DetachTransaction(c.Request().Context(), transactionID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}
