package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// correlationIDKey is the context key the request id middleware stores the trace id under
type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the given correlation id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the correlation id stored in ctx, or "" when absent
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogLedgerMutationStarted(ctx context.Context, transactionID uuid.UUID, operation string) {
	al.logger.InfoContext(ctx, "ledger mutation started",
		slog.String("event_type", "ledger_mutation_started"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("operation", operation),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerMutationCompleted(ctx context.Context, transactionID uuid.UUID, operation string, durationMs int64) {
	al.logger.InfoContext(ctx, "ledger mutation completed",
		slog.String("event_type", "ledger_mutation_completed"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("operation", operation),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerMutationFailed(ctx context.Context, transactionID uuid.UUID, operation string, errorMsg string) {
	al.logger.WarnContext(ctx, "ledger mutation failed",
		slog.String("event_type", "ledger_mutation_failed"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, delta, newBalance string, transactionID uuid.UUID) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.String("delta", delta),
		slog.String("new_balance", newBalance),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int) {
	al.logger.WarnContext(ctx, "optimistic lock conflict",
		slog.String("event_type", "optimistic_lock_conflict"),
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID.String()),
		slog.Int("expected_version", expectedVersion),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAlertEmitted(ctx context.Context, alertID uuid.UUID, alertType string, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "alert emitted",
		slog.String("event_type", "alert_emitted"),
		slog.String("alert_id", alertID.String()),
		slog.String("alert_type", alertType),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogReportGenerated(ctx context.Context, reportType string, start, end time.Time, durationMs int64) {
	al.logger.InfoContext(ctx, "report generated",
		slog.String("event_type", "report_generated"),
		slog.String("report_type", reportType),
		slog.Time("start_date", start),
		slog.Time("end_date", end),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
