package repositories

import (
	"context"
	"time"

	"smb-accounting/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceAdjuster applies a signed delta to an account balance.
// The read-modify-write is atomic per account.
type BalanceAdjuster interface {
	AdjustBalance(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) (*models.Account, error)
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	BalanceAdjuster
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	List(ctx context.Context, filters models.AccountFilters) ([]models.Account, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	UpdateWithOptimisticLock(ctx context.Context, transaction *models.Transaction, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
	Count(ctx context.Context, filters models.TransactionFilters) (int64, error)
	SetReconciliation(ctx context.Context, id uuid.UUID, reconciliationID *uuid.UUID) error
	SumSignedByAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ReconciliationRepositoryInterface defines the contract for reconciliation operations
type ReconciliationRepositoryInterface interface {
	Create(ctx context.Context, reconciliation *models.Reconciliation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error)
	GetByIDForShare(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error)
	List(ctx context.Context, filters models.ReconciliationFilters) ([]models.Reconciliation, error)
	Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) error
}

// BudgetRepositoryInterface defines the contract for budget operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	List(ctx context.Context, filters models.BudgetFilters) ([]models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertConfigurationRepositoryInterface defines the contract for alert configuration operations
type AlertConfigurationRepositoryInterface interface {
	Create(ctx context.Context, config *models.AlertConfiguration) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AlertConfiguration, error)
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]models.AlertConfiguration, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.AlertConfiguration, error)
	Update(ctx context.Context, config *models.AlertConfiguration) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertRepositoryInterface defines the contract for alert operations
type AlertRepositoryInterface interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]models.Alert, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ReportRepositoryInterface defines the contract for financial report persistence
type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *models.FinancialReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FinancialReport, error)
	Update(ctx context.Context, report *models.FinancialReport) error
	List(ctx context.Context, reportType *string) ([]models.FinancialReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LedgerRepositories are the repositories a ledger mutation needs, all bound
// to the same database transaction.
type LedgerRepositories struct {
	Transactions    TransactionRepositoryInterface
	Balances        BalanceAdjuster
	Reconciliations ReconciliationRepositoryInterface
}

// LedgerStoreInterface runs a ledger mutation as one database transaction.
// If fn returns an error every write made through repos is rolled back.
type LedgerStoreInterface interface {
	WithinTx(ctx context.Context, fn func(repos LedgerRepositories) error) error
}
