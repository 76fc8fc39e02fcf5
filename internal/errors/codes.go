package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account and user error codes (ACCOUNT_*)
const (
	AccountNotFound ErrorCode = "ACCOUNT_001"
	UserNotFound    ErrorCode = "ACCOUNT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound               ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount          ErrorCode = "TRANSACTION_002"
	TransactionInvalidType            ErrorCode = "TRANSACTION_003"
	TransactionReconciled             ErrorCode = "TRANSACTION_004"
	TransactionConcurrentModification ErrorCode = "TRANSACTION_005"
	TransactionInvalidPrecision       ErrorCode = "TRANSACTION_006"
)

// Reconciliation error codes (RECONCILIATION_*)
const (
	ReconciliationNotFound        ErrorCode = "RECONCILIATION_001"
	ReconciliationClosed          ErrorCode = "RECONCILIATION_002"
	ReconciliationAccountMismatch ErrorCode = "RECONCILIATION_003"
	ReconciliationInvalidStatus   ErrorCode = "RECONCILIATION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound       ErrorCode = "BUDGET_001"
	BudgetInvalidName    ErrorCode = "BUDGET_002"
	BudgetNegativeAmount ErrorCode = "BUDGET_003"
	BudgetInvalidWindow  ErrorCode = "BUDGET_004"
)

// Alert error codes (ALERT_*)
const (
	AlertNotFound              ErrorCode = "ALERT_001"
	AlertConfigurationNotFound ErrorCode = "ALERT_002"
	AlertInvalidType           ErrorCode = "ALERT_003"
	AlertInvalidStatus         ErrorCode = "ALERT_004"
	AlertNegativeThreshold     ErrorCode = "ALERT_005"
)

// Report error codes (REPORT_*)
const (
	ReportNotFound        ErrorCode = "REPORT_001"
	ReportUnsupportedType ErrorCode = "REPORT_002"
	ReportInvalidWindow   ErrorCode = "REPORT_003"
	ReportInvalidPeriod   ErrorCode = "REPORT_004"
	ReportInvalidName     ErrorCode = "REPORT_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound: "Account not found",
	UserNotFound:    "User not found",

	// Transaction errors
	TransactionNotFound:               "Transaction not found",
	TransactionInvalidAmount:          "Transaction amount must be greater than zero",
	TransactionInvalidType:            "Transaction type must be INCOME or EXPENSE",
	TransactionReconciled:             "Transaction belongs to a completed reconciliation",
	TransactionConcurrentModification: "Transaction was modified concurrently, reload and retry",
	TransactionInvalidPrecision:       "Transaction amount cannot have more than two decimal places",

	// Reconciliation errors
	ReconciliationNotFound:        "Reconciliation not found",
	ReconciliationClosed:          "Reconciliation is already completed",
	ReconciliationAccountMismatch: "Transaction belongs to a different account than the reconciliation",
	ReconciliationInvalidStatus:   "Reconciliation status must be IN_PROGRESS or COMPLETED",

	// Budget errors
	BudgetNotFound:       "Budget not found",
	BudgetInvalidName:    "Budget name is required",
	BudgetNegativeAmount: "Budget amount cannot be negative",
	BudgetInvalidWindow:  "Budget end date is before start date",

	// Alert errors
	AlertNotFound:              "Alert not found",
	AlertConfigurationNotFound: "Alert configuration not found",
	AlertInvalidType:           "Alert type is required",
	AlertInvalidStatus:         "Alert status must be UNREAD or READ",
	AlertNegativeThreshold:     "Alert threshold cannot be negative",

	// Report errors
	ReportNotFound:        "Financial report not found",
	ReportUnsupportedType: "Report type must be INCOME_STATEMENT, BALANCE_SHEET or CASH_FLOW",
	ReportInvalidWindow:   "Report end date is before start date",
	ReportInvalidPeriod:   "Report period must be MONTHLY, QUARTERLY, YEARLY or CUSTOM",
	ReportInvalidName:     "Report name is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested endpoint does not exist",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
