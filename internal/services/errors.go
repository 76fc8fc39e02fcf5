package services

import (
	"errors"
	"fmt"
)

// Error categories. Every service error wraps exactly one of these so callers
// can classify with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrConflictingState = errors.New("conflicting state")
	ErrUnavailable      = errors.New("service unavailable")
)

var (
	ErrAccountNotFound            = fmt.Errorf("account %w", ErrNotFound)
	ErrUserNotFound               = fmt.Errorf("user %w", ErrNotFound)
	ErrTransactionNotFound        = fmt.Errorf("transaction %w", ErrNotFound)
	ErrReconciliationNotFound     = fmt.Errorf("reconciliation %w", ErrNotFound)
	ErrReportNotFound             = fmt.Errorf("financial report %w", ErrNotFound)
	ErrAlertNotFound              = fmt.Errorf("alert %w", ErrNotFound)
	ErrAlertConfigurationNotFound = fmt.Errorf("alert configuration %w", ErrNotFound)
	ErrBudgetNotFound             = fmt.Errorf("budget %w", ErrNotFound)
)

var (
	ErrInvalidAmount          = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)
	ErrInvalidAmountPrecision = fmt.Errorf("%w: amount cannot have more than two decimal places", ErrInvalidArgument)
	ErrInvalidTransactionType = fmt.Errorf("%w: transaction type must be INCOME or EXPENSE", ErrInvalidArgument)
	ErrInvalidReportWindow    = fmt.Errorf("%w: end date is before start date", ErrInvalidArgument)
	ErrUnsupportedReportType  = fmt.Errorf("%w: unsupported report type", ErrInvalidArgument)
	ErrInvalidReportPeriod    = fmt.Errorf("%w: unsupported report period", ErrInvalidArgument)
	ErrInvalidReportName      = fmt.Errorf("%w: report name is required", ErrInvalidArgument)
	ErrInvalidAlertType       = fmt.Errorf("%w: alert type is required", ErrInvalidArgument)
	ErrInvalidAlertStatus     = fmt.Errorf("%w: alert status must be UNREAD or READ", ErrInvalidArgument)
	ErrNegativeThreshold      = fmt.Errorf("%w: threshold cannot be negative", ErrInvalidArgument)

	ErrInvalidReconciliationStatus = fmt.Errorf("%w: reconciliation status must be IN_PROGRESS or COMPLETED", ErrInvalidArgument)
	ErrReconciliationAccount       = fmt.Errorf("%w: transaction belongs to a different account than the reconciliation", ErrInvalidArgument)

	ErrInvalidBudgetName   = fmt.Errorf("%w: budget name is required", ErrInvalidArgument)
	ErrNegativeBudget      = fmt.Errorf("%w: budget amount cannot be negative", ErrInvalidArgument)
	ErrInvalidBudgetWindow = fmt.Errorf("%w: budget end date is before start date", ErrInvalidArgument)
)

var (
	ErrTransactionReconciled  = fmt.Errorf("%w: transaction belongs to a completed reconciliation", ErrConflictingState)
	ErrReconciliationClosed   = fmt.Errorf("%w: reconciliation is already completed", ErrConflictingState)
	ErrConcurrentModification = fmt.Errorf("%w: transaction was modified concurrently", ErrConflictingState)
)
