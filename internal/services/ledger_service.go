package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"smb-accounting/internal/models"
	"smb-accounting/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
	operationDelete = "delete"
)

// CreateTransactionInput carries the fields of a new ledger entry
type CreateTransactionInput struct {
	AccountID        uuid.UUID
	UserID           uuid.UUID
	Type             string
	Amount           decimal.Decimal
	Date             *time.Time
	Category         string
	Description      string
	Reference        string
	ReconciliationID *uuid.UUID
}

// TransactionChanges is a partial update. Nil fields keep their stored value.
// ExpectedVersion, when set, must match the stored version.
type TransactionChanges struct {
	Amount          *decimal.Decimal
	Type            *string
	Date            *time.Time
	Category        *string
	Description     *string
	ExpectedVersion *int
}

// changesBalance reports whether the changes can move the account balance
func (c TransactionChanges) changesBalance() bool {
	return c.Amount != nil || c.Type != nil
}

// LedgerOptions toggles optional ledger behavior
type LedgerOptions struct {
	// EvaluateAlertsOnAmend runs the alert evaluator after a successful update too
	EvaluateAlertsOnAmend bool
}

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	store           repositories.LedgerStoreInterface
	accountRepo     repositories.AccountRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	evaluator       AlertEvaluatorInterface
	metrics         MetricsRecorderInterface
	auditLogger     AuditLoggerInterface
	logger          *slog.Logger
	options         LedgerOptions
}

// NewLedgerService creates the balance ledger
func NewLedgerService(
	store repositories.LedgerStoreInterface,
	accountRepo repositories.AccountRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	evaluator AlertEvaluatorInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
	options LedgerOptions,
) LedgerServiceInterface {
	return &ledgerService{
		store:           store,
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		evaluator:       evaluator,
		metrics:         metrics,
		auditLogger:     auditLogger,
		logger:          logger,
		options:         options,
	}
}

// CreateTransaction persists a transaction and applies its signed amount to the
// account in one database transaction, then hands it to the alert evaluator.
func (s *ledgerService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	start := time.Now()

	owner, err := s.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get account")
	}
	// another user's account is reported as missing
	if owner.UserID != input.UserID {
		return nil, ErrAccountNotFound
	}
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, mapRepositoryError(err, "failed to get user")
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if !models.IsValidTransactionType(input.Type) {
		return nil, ErrInvalidTransactionType
	}

	transaction := &models.Transaction{
		ID:               uuid.New(),
		AccountID:        input.AccountID,
		UserID:           input.UserID,
		Type:             input.Type,
		Amount:           input.Amount,
		Category:         input.Category,
		Description:      input.Description,
		Reference:        input.Reference,
		ReconciliationID: input.ReconciliationID,
	}
	if input.Date != nil {
		transaction.Date = input.Date.UTC()
	}

	s.auditLogger.LogLedgerMutationStarted(ctx, transaction.ID, operationCreate)

	var account *models.Account
	err = s.store.WithinTx(ctx, func(repos repositories.LedgerRepositories) error {
		if transaction.ReconciliationID != nil {
			reconciliation, err := repos.Reconciliations.GetByIDForShare(ctx, *transaction.ReconciliationID)
			if err != nil {
				return mapRepositoryError(err, "failed to get reconciliation")
			}
			if reconciliation.IsCompleted() {
				return ErrReconciliationClosed
			}
		}

		if err := repos.Transactions.Create(ctx, transaction); err != nil {
			return mapRepositoryError(err, "failed to create transaction")
		}

		updated, err := repos.Balances.AdjustBalance(ctx, transaction.AccountID, transaction.BalanceEffect())
		if err != nil {
			return mapRepositoryError(err, "failed to adjust account balance")
		}
		account = updated
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, transaction.ID, operationCreate, err)
		return nil, err
	}

	s.recordSuccess(ctx, transaction, account, transaction.BalanceEffect(), operationCreate, start)

	s.evaluator.Evaluate(ctx, transaction, account)

	return transaction, nil
}

// UpdateTransaction amends a transaction. When amount or type change the
// balance moves by reversal(original) + effect(new) as a single adjustment,
// committed together with the field update.
func (s *ledgerService) UpdateTransaction(ctx context.Context, id uuid.UUID, userID *uuid.UUID, changes TransactionChanges) (*models.Transaction, error) {
	start := time.Now()
	s.auditLogger.LogLedgerMutationStarted(ctx, id, operationUpdate)

	var (
		updated *models.Transaction
		account *models.Account
		delta   decimal.Decimal
	)
	err := s.store.WithinTx(ctx, func(repos repositories.LedgerRepositories) error {
		original, err := s.lockTransaction(ctx, repos, id, userID)
		if err != nil {
			return err
		}

		if changes.ExpectedVersion != nil && original.HasVersionConflict(*changes.ExpectedVersion) {
			s.auditLogger.LogOptimisticLockConflict(ctx, "transaction", id, *changes.ExpectedVersion)
			return ErrConcurrentModification
		}

		next, err := applyChanges(*original, changes)
		if err != nil {
			return err
		}

		if changes.changesBalance() {
			delta = original.Reversal().Add(next.BalanceEffect())
			if !delta.IsZero() {
				account, err = repos.Balances.AdjustBalance(ctx, original.AccountID, delta)
				if err != nil {
					return mapRepositoryError(err, "failed to adjust account balance")
				}
			}
		}

		if err := repos.Transactions.UpdateWithOptimisticLock(ctx, &next, original.Version); err != nil {
			if errors.Is(err, models.ErrOptimisticLockConflict) {
				s.auditLogger.LogOptimisticLockConflict(ctx, "transaction", id, original.Version)
				return ErrConcurrentModification
			}
			return mapRepositoryError(err, "failed to update transaction")
		}

		updated = &next
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, id, operationUpdate, err)
		return nil, err
	}

	s.recordSuccess(ctx, updated, account, delta, operationUpdate, start)

	if s.options.EvaluateAlertsOnAmend {
		s.evaluator.Evaluate(ctx, updated, account)
	}

	return updated, nil
}

// DeleteTransaction applies the reversal of a transaction's effect and removes it
func (s *ledgerService) DeleteTransaction(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	start := time.Now()
	s.auditLogger.LogLedgerMutationStarted(ctx, id, operationDelete)

	var (
		deleted *models.Transaction
		account *models.Account
	)
	err := s.store.WithinTx(ctx, func(repos repositories.LedgerRepositories) error {
		original, err := s.lockTransaction(ctx, repos, id, userID)
		if err != nil {
			return err
		}

		account, err = repos.Balances.AdjustBalance(ctx, original.AccountID, original.Reversal())
		if err != nil {
			return mapRepositoryError(err, "failed to adjust account balance")
		}

		if err := repos.Transactions.Delete(ctx, id); err != nil {
			return mapRepositoryError(err, "failed to delete transaction")
		}

		deleted = original
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, id, operationDelete, err)
		return err
	}

	s.recordSuccess(ctx, deleted, account, deleted.Reversal(), operationDelete, start)
	return nil
}

// GetTransaction retrieves a transaction. A non-nil userID restricts the
// lookup to that owner.
func (s *ledgerService) GetTransaction(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get transaction")
	}
	if userID != nil && transaction.UserID != *userID {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

// ListTransactions returns a page of transactions and the total matching count
func (s *ledgerService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.Type != nil && !models.IsValidTransactionType(*filters.Type) {
		return nil, 0, ErrInvalidTransactionType
	}

	transactions, err := s.transactionRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	total, err := s.transactionRepo.Count(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return transactions, total, nil
}

// lockTransaction loads a transaction under a row lock and rejects it when it
// is not owned by userID or sits in a completed reconciliation. The
// transaction row is always locked before its reconciliation row.
func (s *ledgerService) lockTransaction(ctx context.Context, repos repositories.LedgerRepositories, id uuid.UUID, userID *uuid.UUID) (*models.Transaction, error) {
	transaction, err := repos.Transactions.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get transaction")
	}
	if userID != nil && transaction.UserID != *userID {
		return nil, ErrTransactionNotFound
	}

	if transaction.ReconciliationID != nil {
		reconciliation, err := repos.Reconciliations.GetByIDForShare(ctx, *transaction.ReconciliationID)
		if err != nil && !errors.Is(err, repositories.ErrReconciliationNotFound) {
			return nil, fmt.Errorf("failed to get reconciliation: %w", err)
		}
		if reconciliation != nil && reconciliation.IsCompleted() {
			return nil, ErrTransactionReconciled
		}
	}

	return transaction, nil
}

// applyChanges returns a copy of original with the changes applied and validated
func applyChanges(original models.Transaction, changes TransactionChanges) (models.Transaction, error) {
	next := original

	if changes.Amount != nil {
		if err := validateAmount(*changes.Amount); err != nil {
			return next, err
		}
		next.Amount = *changes.Amount
	}
	if changes.Type != nil {
		if !models.IsValidTransactionType(*changes.Type) {
			return next, ErrInvalidTransactionType
		}
		next.Type = *changes.Type
	}
	if changes.Date != nil {
		next.Date = changes.Date.UTC()
	}
	if changes.Category != nil {
		next.Category = *changes.Category
	}
	if changes.Description != nil {
		next.Description = *changes.Description
	}

	return next, nil
}

// validateAmount requires a positive amount that fits the two decimal places
// the amount and balance columns store
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(models.AmountScale)) {
		return ErrInvalidAmountPrecision
	}
	return nil
}

func (s *ledgerService) recordSuccess(ctx context.Context, transaction *models.Transaction, account *models.Account, delta decimal.Decimal, operation string, start time.Time) {
	duration := time.Since(start)

	if account != nil {
		s.auditLogger.LogBalanceUpdate(ctx, account.ID, delta.String(), account.Balance.String(), transaction.ID)
		s.metrics.RecordGauge("ledger.balance_delta", delta.InexactFloat64(), nil)
	}
	s.auditLogger.LogLedgerMutationCompleted(ctx, transaction.ID, operation, duration.Milliseconds())
	s.metrics.IncrementCounter("ledger.mutation.success", map[string]string{"operation": operation})
	s.metrics.RecordProcessingTime("ledger."+operation, duration)
}

func (s *ledgerService) recordFailure(ctx context.Context, transactionID uuid.UUID, operation string, err error) {
	s.auditLogger.LogLedgerMutationFailed(ctx, transactionID, operation, err.Error())
	s.metrics.IncrementCounter("ledger.mutation.failed", map[string]string{"operation": operation})
	if errors.Is(err, ErrConflictingState) {
		s.metrics.IncrementCounter("ledger.conflict", nil)
	}
}

// mapRepositoryError translates repository sentinels into the service taxonomy.
// Errors already in the taxonomy pass through unchanged.
func mapRepositoryError(err error, msg string) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrConflictingState), errors.Is(err, ErrUnavailable):
		return err
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, repositories.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return ErrTransactionNotFound
	case errors.Is(err, repositories.ErrReconciliationNotFound):
		return ErrReconciliationNotFound
	case errors.Is(err, repositories.ErrReportNotFound):
		return ErrReportNotFound
	case errors.Is(err, repositories.ErrAlertNotFound):
		return ErrAlertNotFound
	case errors.Is(err, repositories.ErrAlertConfigurationNotFound):
		return ErrAlertConfigurationNotFound
	case errors.Is(err, repositories.ErrBudgetNotFound):
		return ErrBudgetNotFound
	case errors.Is(err, models.ErrInvalidBudgetName):
		return ErrInvalidBudgetName
	case errors.Is(err, models.ErrNegativeBudget):
		return ErrNegativeBudget
	case errors.Is(err, models.ErrInvalidBudgetWindow):
		return ErrInvalidBudgetWindow
	case errors.Is(err, models.ErrInvalidAmount):
		return ErrInvalidAmount
	case errors.Is(err, models.ErrInvalidTransactionType):
		return ErrInvalidTransactionType
	case errors.Is(err, models.ErrOptimisticLockConflict):
		return ErrConcurrentModification
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
