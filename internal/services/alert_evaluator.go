package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"smb-accounting/internal/amqp"
	"smb-accounting/internal/models"
	"smb-accounting/internal/repositories"

	"github.com/shopspring/decimal"
)

// AlertEvaluatorOptions toggles optional evaluator behavior
type AlertEvaluatorOptions struct {
	// MatchAllConfigs evaluates every active configuration of a type instead of
	// only the first one in creation order
	MatchAllConfigs bool
}

// alertEvaluator implements AlertEvaluatorInterface
type alertEvaluator struct {
	accountRepo repositories.AccountRepositoryInterface
	configRepo  repositories.AlertConfigurationRepositoryInterface
	sink        AlertSink
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
	logger      *slog.Logger
	options     AlertEvaluatorOptions
}

// NewAlertEvaluator creates an evaluator that sends alerts to sink
func NewAlertEvaluator(
	accountRepo repositories.AccountRepositoryInterface,
	configRepo repositories.AlertConfigurationRepositoryInterface,
	sink AlertSink,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
	options AlertEvaluatorOptions,
) AlertEvaluatorInterface {
	return &alertEvaluator{
		accountRepo: accountRepo,
		configRepo:  configRepo,
		sink:        sink,
		metrics:     metrics,
		auditLogger: auditLogger,
		logger:      logger,
		options:     options,
	}
}

// Evaluate checks the committed transaction and the account as the ledger
// left it against the owner's active configurations. A nil account is
// re-read, so it may already reflect later writes. Failures are logged and
// dropped.
func (e *alertEvaluator) Evaluate(ctx context.Context, transaction *models.Transaction, account *models.Account) []models.Alert {
	if account == nil {
		return e.evaluateCurrent(ctx, transaction)
	}
	return e.evaluate(ctx, transaction, account)
}

func (e *alertEvaluator) evaluateCurrent(ctx context.Context, transaction *models.Transaction) []models.Alert {
	account, err := e.accountRepo.GetByID(ctx, transaction.AccountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			e.logger.DebugContext(ctx, "account gone before alert evaluation, skipping",
				"account_id", transaction.AccountID,
				"transaction_id", transaction.ID)
			return nil
		}
		e.fail(ctx, transaction, "failed to load account", err)
		return nil
	}
	return e.evaluate(ctx, transaction, account)
}

func (e *alertEvaluator) evaluate(ctx context.Context, transaction *models.Transaction, account *models.Account) []models.Alert {
	configs, err := e.configRepo.FindActiveByUserID(ctx, transaction.UserID)
	if err != nil {
		e.fail(ctx, transaction, "failed to load alert configurations", err)
		return nil
	}

	var emitted []models.Alert

	for _, config := range e.matching(configs, models.AlertTypeLowBalance) {
		if account.Balance.LessThan(*config.Threshold) {
			emitted = e.emit(ctx, emitted, transaction, models.AlertTypeLowBalance,
				lowBalanceMessage(account, *config.Threshold))
		}
	}

	if transaction.IsExpense() {
		for _, config := range e.matching(configs, models.AlertTypeHighExpense) {
			if transaction.Amount.GreaterThan(*config.Threshold) {
				emitted = e.emit(ctx, emitted, transaction, models.AlertTypeHighExpense,
					highExpenseMessage(transaction.Amount, account.Currency, *config.Threshold))
			}
		}
	}

	return emitted
}

// matching returns the configurations of alertType that carry a threshold.
// Only the first is returned unless MatchAllConfigs is set.
func (e *alertEvaluator) matching(configs []models.AlertConfiguration, alertType string) []models.AlertConfiguration {
	var matched []models.AlertConfiguration
	for _, config := range configs {
		if config.Type != alertType || !config.HasThreshold() {
			continue
		}
		matched = append(matched, config)
		if !e.options.MatchAllConfigs {
			break
		}
	}
	return matched
}

func (e *alertEvaluator) emit(ctx context.Context, emitted []models.Alert, transaction *models.Transaction, alertType, message string) []models.Alert {
	alert := &models.Alert{
		UserID:  transaction.UserID,
		Type:    alertType,
		Message: message,
		Status:  models.AlertStatusUnread,
	}

	if err := e.sink.Emit(ctx, alert); err != nil {
		e.fail(ctx, transaction, "failed to emit alert", err)
		return emitted
	}

	e.auditLogger.LogAlertEmitted(ctx, alert.ID, alert.Type, alert.UserID)
	e.metrics.IncrementCounter("alert.emitted", map[string]string{"type": alertType})
	return append(emitted, *alert)
}

func (e *alertEvaluator) fail(ctx context.Context, transaction *models.Transaction, msg string, err error) {
	e.logger.WarnContext(ctx, "alert evaluation: "+msg,
		"error", err,
		"transaction_id", transaction.ID,
		"account_id", transaction.AccountID,
		"user_id", transaction.UserID)
	e.metrics.IncrementCounter("alert.evaluation.failed", nil)
}

func lowBalanceMessage(account *models.Account, threshold decimal.Decimal) string {
	return fmt.Sprintf("Low balance alert: Your account \"%s\" balance is below the threshold of %s %s",
		account.Name, threshold.String(), account.Currency)
}

func highExpenseMessage(amount decimal.Decimal, currency string, threshold decimal.Decimal) string {
	return fmt.Sprintf("High expense alert: A transaction of %s %s exceeds your threshold of %s %s",
		amount.String(), currency, threshold.String(), currency)
}

// repositoryAlertSink persists alerts
type repositoryAlertSink struct {
	alertRepo repositories.AlertRepositoryInterface
}

// NewRepositoryAlertSink creates a sink that stores alerts in the database
func NewRepositoryAlertSink(alertRepo repositories.AlertRepositoryInterface) AlertSink {
	return &repositoryAlertSink{alertRepo: alertRepo}
}

func (s *repositoryAlertSink) Emit(ctx context.Context, alert *models.Alert) error {
	return s.alertRepo.Create(ctx, alert)
}

// publishingAlertSink stores through next and then announces the alert.
// A publish failure does not fail the emit.
type publishingAlertSink struct {
	next      AlertSink
	publisher AlertPublisher
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewPublishingAlertSink wraps next so every stored alert is also published
func NewPublishingAlertSink(next AlertSink, publisher AlertPublisher, metrics MetricsRecorderInterface, logger *slog.Logger) AlertSink {
	return &publishingAlertSink{
		next:      next,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *publishingAlertSink) Emit(ctx context.Context, alert *models.Alert) error {
	if err := s.next.Emit(ctx, alert); err != nil {
		return err
	}

	msg := amqp.NewAlertCreatedMessage(alert.ID, alert.UserID, alert.Type, alert.Message, alert.CreatedAt)
	if err := s.publisher.PublishAlertCreated(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "failed to publish alert.created",
			"error", err,
			"alert_id", alert.ID)
		s.metrics.IncrementCounter("alert.publish.failed", nil)
	}
	return nil
}
