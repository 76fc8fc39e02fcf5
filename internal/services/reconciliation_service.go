package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smb-accounting/internal/models"
	"smb-accounting/internal/repositories"

	"github.com/google/uuid"
)

// CreateReconciliationInput carries the fields of a new reconciliation.
// A zero StatementDate means today.
type CreateReconciliationInput struct {
	AccountID     uuid.UUID
	UserID        uuid.UUID
	StatementDate time.Time
	Note          string
}

// reconciliationService implements ReconciliationServiceInterface
type reconciliationService struct {
	store              repositories.LedgerStoreInterface
	accountRepo        repositories.AccountRepositoryInterface
	reconciliationRepo repositories.ReconciliationRepositoryInterface
	metrics            MetricsRecorderInterface
	logger             *slog.Logger
	now                func() time.Time
}

// NewReconciliationService creates the reconciliation service. Attach, detach
// and complete run inside store transactions so they serialize with ledger
// edits of the same transaction.
func NewReconciliationService(
	store repositories.LedgerStoreInterface,
	accountRepo repositories.AccountRepositoryInterface,
	reconciliationRepo repositories.ReconciliationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReconciliationServiceInterface {
	return &reconciliationService{
		store:              store,
		accountRepo:        accountRepo,
		reconciliationRepo: reconciliationRepo,
		metrics:            metrics,
		logger:             logger,
		now:                time.Now,
	}
}

func (s *reconciliationService) CreateReconciliation(ctx context.Context, input CreateReconciliationInput) (*models.Reconciliation, error) {
	account, err := s.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get account")
	}
	if account.UserID != input.UserID {
		return nil, ErrAccountNotFound
	}

	statementDate := input.StatementDate
	if statementDate.IsZero() {
		statementDate = s.now()
	}

	reconciliation := &models.Reconciliation{
		AccountID:     account.ID,
		Status:        models.ReconciliationStatusInProgress,
		StatementDate: statementDate.UTC(),
		Note:          strings.TrimSpace(input.Note),
	}
	if err := s.reconciliationRepo.Create(ctx, reconciliation); err != nil {
		return nil, mapRepositoryError(err, "failed to create reconciliation")
	}

	s.logger.InfoContext(ctx, "reconciliation started",
		"reconciliation_id", reconciliation.ID,
		"account_id", reconciliation.AccountID)
	return reconciliation, nil
}

// GetReconciliation returns a reconciliation of one of the user's accounts
func (s *reconciliationService) GetReconciliation(ctx context.Context, id, userID uuid.UUID) (*models.Reconciliation, error) {
	reconciliation, err := s.reconciliationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get reconciliation")
	}

	account, err := s.accountRepo.GetByID(ctx, reconciliation.AccountID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get account")
	}
	if account.UserID != userID {
		return nil, ErrReconciliationNotFound
	}
	return reconciliation, nil
}

func (s *reconciliationService) ListReconciliations(ctx context.Context, filters models.ReconciliationFilters) ([]models.Reconciliation, error) {
	if filters.Status != nil && !models.IsValidReconciliationStatus(*filters.Status) {
		return nil, ErrInvalidReconciliationStatus
	}

	reconciliations, err := s.reconciliationRepo.List(ctx, filters)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list reconciliations")
	}
	return reconciliations, nil
}

// AttachTransaction links a transaction to an in-progress reconciliation of
// its own account. Re-attaching to the same reconciliation is a no-op.
func (s *reconciliationService) AttachTransaction(ctx context.Context, id, transactionID, userID uuid.UUID) (*models.Transaction, error) {
	if _, err := s.GetReconciliation(ctx, id, userID); err != nil {
		return nil, err
	}

	var attached *models.Transaction
	err := s.store.WithinTx(ctx, func(repos repositories.LedgerRepositories) error {
		transaction, err := lockOwnedTransaction(ctx, repos, transactionID, userID)
		if err != nil {
			return err
		}

		reconciliation, err := repos.Reconciliations.GetByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err, "failed to get reconciliation")
		}
		if reconciliation.IsCompleted() {
			return ErrReconciliationClosed
		}
		if transaction.AccountID != reconciliation.AccountID {
			return ErrReconciliationAccount
		}

		if transaction.ReconciliationID != nil {
			if *transaction.ReconciliationID == id {
				attached = transaction
				return nil
			}
			if err := ensureReconciliationOpen(ctx, repos, *transaction.ReconciliationID); err != nil {
				return err
			}
		}

		if err := repos.Transactions.SetReconciliation(ctx, transaction.ID, &id); err != nil {
			return mapRepositoryError(err, "failed to attach transaction")
		}
		transaction.ReconciliationID = &id
		transaction.Version++
		attached = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("reconciliation.attach", nil)
	return attached, nil
}

// DetachTransaction unlinks a transaction from its reconciliation. A
// transaction with no reconciliation is returned unchanged.
func (s *reconciliationService) DetachTransaction(ctx context.Context, transactionID, userID uuid.UUID) (*models.Transaction, error) {
	var detached *models.Transaction
	err := s.store.WithinTx(ctx, func(repos repositories.LedgerRepositories) error {
		transaction, err := lockOwnedTransaction(ctx, repos, transactionID, userID)
		if err != nil {
			return err
		}
		if transaction.ReconciliationID == nil {
			detached = transaction
			return nil
		}

		if err := ensureReconciliationOpen(ctx, repos, *transaction.ReconciliationID); err != nil {
			return err
		}

		if err := repos.Transactions.SetReconciliation(ctx, transaction.ID, nil); err != nil {
			return mapRepositoryError(err, "failed to detach transaction")
		}
		transaction.ReconciliationID = nil
		transaction.Version++
		detached = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("reconciliation.detach", nil)
	return detached, nil
}

// CompleteReconciliation closes an in-progress reconciliation. From then on
// the ledger refuses to amend or delete its transactions.
func (s *reconciliationService) CompleteReconciliation(ctx context.Context, id, userID uuid.UUID) (*models.Reconciliation, error) {
	if _, err := s.GetReconciliation(ctx, id, userID); err != nil {
		return nil, err
	}

	var completed *models.Reconciliation
	err := s.store.WithinTx(ctx, func(repos repositories.LedgerRepositories) error {
		reconciliation, err := repos.Reconciliations.GetByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err, "failed to get reconciliation")
		}
		if reconciliation.IsCompleted() {
			return ErrReconciliationClosed
		}

		completedAt := s.now().UTC()
		if err := repos.Reconciliations.Complete(ctx, id, completedAt); err != nil {
			return mapRepositoryError(err, "failed to complete reconciliation")
		}

		reconciliation.Status = models.ReconciliationStatusCompleted
		reconciliation.CompletedAt = &completedAt
		reconciliation.UpdatedAt = completedAt
		completed = reconciliation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("reconciliation.completed", nil)
	s.logger.InfoContext(ctx, "reconciliation completed",
		"reconciliation_id", completed.ID,
		"account_id", completed.AccountID)
	return completed, nil
}

// lockOwnedTransaction locks a transaction row and hides it from other users
func lockOwnedTransaction(ctx context.Context, repos repositories.LedgerRepositories, id, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := repos.Transactions.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get transaction")
	}
	if transaction.UserID != userID {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

// ensureReconciliationOpen fails when the reconciliation a transaction
// currently belongs to has been completed
func ensureReconciliationOpen(ctx context.Context, repos repositories.LedgerRepositories, id uuid.UUID) error {
	current, err := repos.Reconciliations.GetByIDForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err, "failed to get reconciliation")
	}
	if current.IsCompleted() {
		return ErrTransactionReconciled
	}
	return nil
}
