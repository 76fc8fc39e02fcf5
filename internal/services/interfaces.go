package services

import (
	"context"
	"time"

	"smb-accounting/internal/amqp"
	"smb-accounting/internal/models"

	"github.com/google/uuid"
)

// LedgerServiceInterface keeps account balances consistent with their transactions
type LedgerServiceInterface interface {
	// CreateTransaction persists a transaction and applies its signed amount to the account
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error)

	// UpdateTransaction amends a transaction, moving the balance by reversal(old) + effect(new)
	UpdateTransaction(ctx context.Context, id uuid.UUID, userID *uuid.UUID, changes TransactionChanges) (*models.Transaction, error)

	// DeleteTransaction reverses a transaction's effect and removes it
	DeleteTransaction(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error

	GetTransaction(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// AlertEvaluatorInterface checks a committed transaction against the owner's alert rules.
// Evaluation is best effort and never returns an error.
type AlertEvaluatorInterface interface {
	// Evaluate judges LOW_BALANCE against account, the post-commit state returned
	// by the balance update. A nil account is loaded from the store.
	Evaluate(ctx context.Context, transaction *models.Transaction, account *models.Account) []models.Alert
}

// AlertSink receives alerts emitted by the evaluator
type AlertSink interface {
	Emit(ctx context.Context, alert *models.Alert) error
}

// AlertPublisher sends alert.created events to a broker
type AlertPublisher interface {
	PublishAlertCreated(ctx context.Context, msg *amqp.AlertCreatedMessage) error
}

// AlertServiceInterface manages alert read state
type AlertServiceInterface interface {
	ListAlerts(ctx context.Context, userID uuid.UUID, status *string) ([]models.Alert, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) (*models.Alert, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// AlertConfigurationServiceInterface manages the rules the evaluator reads
type AlertConfigurationServiceInterface interface {
	CreateConfiguration(ctx context.Context, input CreateAlertConfigurationInput) (*models.AlertConfiguration, error)
	ListConfigurations(ctx context.Context, userID uuid.UUID) ([]models.AlertConfiguration, error)
	GetConfiguration(ctx context.Context, id, userID uuid.UUID) (*models.AlertConfiguration, error)
	UpdateConfiguration(ctx context.Context, id, userID uuid.UUID, changes AlertConfigurationChanges) (*models.AlertConfiguration, error)
	ToggleConfiguration(ctx context.Context, id, userID uuid.UUID) (*models.AlertConfiguration, error)
	DeleteConfiguration(ctx context.Context, id, userID uuid.UUID) error
}

// ReportServiceInterface builds and stores financial reports
type ReportServiceInterface interface {
	// GenerateReport aggregates one report type over [start, end] without persisting it
	GenerateReport(ctx context.Context, reportType string, start, end time.Time) (models.ReportData, error)

	CreateReport(ctx context.Context, input CreateReportInput) (*models.FinancialReport, error)

	// RegenerateReport applies changes and rebuilds data when type or window changed
	RegenerateReport(ctx context.Context, id uuid.UUID, changes ReportChanges) (*models.FinancialReport, error)

	GetReport(ctx context.Context, id uuid.UUID) (*models.FinancialReport, error)
	ListReports(ctx context.Context, reportType *string) ([]models.FinancialReport, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}

// ReconciliationServiceInterface matches transactions against bank statements.
// Completing a reconciliation freezes every transaction attached to it.
type ReconciliationServiceInterface interface {
	CreateReconciliation(ctx context.Context, input CreateReconciliationInput) (*models.Reconciliation, error)
	GetReconciliation(ctx context.Context, id, userID uuid.UUID) (*models.Reconciliation, error)
	ListReconciliations(ctx context.Context, filters models.ReconciliationFilters) ([]models.Reconciliation, error)

	// AttachTransaction links a transaction of the reconciled account to an in-progress reconciliation
	AttachTransaction(ctx context.Context, id, transactionID, userID uuid.UUID) (*models.Transaction, error)

	// DetachTransaction unlinks a transaction unless its reconciliation is completed
	DetachTransaction(ctx context.Context, transactionID, userID uuid.UUID) (*models.Transaction, error)

	CompleteReconciliation(ctx context.Context, id, userID uuid.UUID) (*models.Reconciliation, error)
}

// BudgetServiceInterface manages budgets and compares them with actual spending
type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, input CreateBudgetInput) (*models.Budget, error)
	GetBudget(ctx context.Context, id, userID uuid.UUID) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID, category *string) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, id, userID uuid.UUID, changes BudgetChanges) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id, userID uuid.UUID) error

	// GetBudgetReport sums the owner's expenses in the budget window and category
	GetBudgetReport(ctx context.Context, id, userID uuid.UUID) (*models.BudgetReport, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogLedgerMutationStarted(ctx context.Context, transactionID uuid.UUID, operation string)
	LogLedgerMutationCompleted(ctx context.Context, transactionID uuid.UUID, operation string, durationMs int64)
	LogLedgerMutationFailed(ctx context.Context, transactionID uuid.UUID, operation string, errorMsg string)
	LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, delta, newBalance string, transactionID uuid.UUID)
	LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int)
	LogAlertEmitted(ctx context.Context, alertID uuid.UUID, alertType string, userID uuid.UUID)
	LogReportGenerated(ctx context.Context, reportType string, start, end time.Time, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// TokenServiceInterface verifies bearer tokens
type TokenServiceInterface interface {
	// ValidateAccessToken returns the user ID from the token subject
	ValidateAccessToken(tokenString string) (uuid.UUID, *models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	IssueAccessToken(userID uuid.UUID, ttl time.Duration) (string, time.Time, error)
}
