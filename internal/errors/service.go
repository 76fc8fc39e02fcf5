package errors

import (
	stderrors "errors"

	"smb-accounting/internal/services"
)

// serviceCodes pairs service sentinels with their API code. Order matters:
// specific sentinels are matched before the category they wrap.
var serviceCodes = []struct {
	err  error
	code ErrorCode
}{
	{services.ErrAccountNotFound, AccountNotFound},
	{services.ErrUserNotFound, UserNotFound},
	{services.ErrTransactionNotFound, TransactionNotFound},
	{services.ErrReconciliationNotFound, ReconciliationNotFound},
	{services.ErrReportNotFound, ReportNotFound},
	{services.ErrAlertNotFound, AlertNotFound},
	{services.ErrAlertConfigurationNotFound, AlertConfigurationNotFound},
	{services.ErrBudgetNotFound, BudgetNotFound},

	{services.ErrInvalidAmount, TransactionInvalidAmount},
	{services.ErrInvalidAmountPrecision, TransactionInvalidPrecision},
	{services.ErrInvalidTransactionType, TransactionInvalidType},
	{services.ErrInvalidReportWindow, ReportInvalidWindow},
	{services.ErrUnsupportedReportType, ReportUnsupportedType},
	{services.ErrInvalidReportPeriod, ReportInvalidPeriod},
	{services.ErrInvalidReportName, ReportInvalidName},
	{services.ErrInvalidAlertType, AlertInvalidType},
	{services.ErrInvalidAlertStatus, AlertInvalidStatus},
	{services.ErrNegativeThreshold, AlertNegativeThreshold},
	{services.ErrReconciliationAccount, ReconciliationAccountMismatch},
	{services.ErrInvalidReconciliationStatus, ReconciliationInvalidStatus},
	{services.ErrInvalidBudgetName, BudgetInvalidName},
	{services.ErrNegativeBudget, BudgetNegativeAmount},
	{services.ErrInvalidBudgetWindow, BudgetInvalidWindow},

	{services.ErrTransactionReconciled, TransactionReconciled},
	{services.ErrReconciliationClosed, ReconciliationClosed},
	{services.ErrConcurrentModification, TransactionConcurrentModification},

	{services.ErrUnavailable, SystemServiceUnavailable},
	{services.ErrInvalidArgument, ValidationGeneral},
}

// FromServiceError returns the API code for an error from the service layer.
// ok is false for errors outside the service taxonomy, which callers should
// treat as internal errors.
func FromServiceError(err error) (code ErrorCode, ok bool) {
	if err == nil {
		return "", false
	}
	for _, entry := range serviceCodes {
		if stderrors.Is(err, entry.err) {
			return entry.code, true
		}
	}
	return "", false
}

// NewServiceErrorResponse builds the response for a service error. Errors
// outside the taxonomy become a generic system error.
func NewServiceErrorResponse(err error, traceID string) *ErrorResponse {
	code, ok := FromServiceError(err)
	if !ok {
		response, _ := WrapSystemError(err, traceID)
		return response
	}
	return NewErrorResponse(code, traceID)
}
