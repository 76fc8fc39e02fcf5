package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smb-accounting/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByIDForUpdate retrieves a transaction and locks its row until the
// surrounding database transaction ends
func (r *transactionRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to lock transaction: %w", err)
	}
	return &transaction, nil
}

// UpdateWithOptimisticLock writes the mutable fields of a transaction only if
// the stored version still equals expectedVersion
func (r *transactionRepository) UpdateWithOptimisticLock(ctx context.Context, transaction *models.Transaction, expectedVersion int) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND version = ?", transaction.ID, expectedVersion).
		Updates(map[string]interface{}{
			"amount":      transaction.Amount,
			"type":        transaction.Type,
			"date":        transaction.Date.UTC(),
			"category":    transaction.Category,
			"description": transaction.Description,
			"reference":   transaction.Reference,
			"version":     gorm.Expr("version + 1"),
			"updated_at":  now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction with optimistic lock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrOptimisticLockConflict
	}

	transaction.Version = expectedVersion + 1
	transaction.UpdatedAt = now
	return nil
}

// SetReconciliation attaches the transaction to a reconciliation, or detaches
// it when reconciliationID is nil. The version moves like any other edit.
func (r *transactionRepository) SetReconciliation(ctx context.Context, id uuid.UUID, reconciliationID *uuid.UUID) error {
	var value interface{}
	if reconciliationID != nil {
		value = *reconciliationID
	}

	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reconciliation_id": value,
			"version":           gorm.Expr("version + 1"),
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set transaction reconciliation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// List retrieves transactions matching the filters
func (r *transactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.filtered(ctx, filters)

	if filters.SortBy == models.SortByDateAsc {
		query = query.Order("date ASC").Order("created_at ASC")
	} else {
		query = query.Order("date DESC").Order("created_at DESC")
	}

	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, nil
}

// Count returns how many transactions match the filters, ignoring paging
func (r *transactionRepository) Count(ctx context.Context, filters models.TransactionFilters) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filters).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}
	return total, nil
}

// SumSignedByAccount recomputes an account balance from its transactions
func (r *transactionRepository) SumSignedByAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Select("amount", "type").
		Where("account_id = ?", accountID).
		Find(&transactions).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account transactions: %w", err)
	}

	total := decimal.Zero
	for i := range transactions {
		total = total.Add(transactions[i].BalanceEffect())
	}
	return total, nil
}

func (r *transactionRepository) filtered(ctx context.Context, filters models.TransactionFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", filters.StartDate.UTC())
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", filters.EndDate.UTC())
	}

	return query
}
