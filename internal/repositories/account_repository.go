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
	ErrAccountNotFound = errors.New("account not found")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// List retrieves accounts matching the filters, oldest first
func (r *accountRepository) List(ctx context.Context, filters models.AccountFilters) ([]models.Account, error) {
	var accounts []models.Account

	query := r.db.WithContext(ctx).Model(&models.Account{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.AccountType != nil {
		query = query.Where("account_type = ?", *filters.AccountType)
	}
	if filters.Currency != nil {
		query = query.Where("currency = ?", *filters.Currency)
	}

	if err := query.Order("created_at ASC").Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

// AdjustBalance adds delta to the account balance under a row lock and
// returns the account as it is after the update.
func (r *accountRepository) AdjustBalance(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) (*models.Account, error) {
	var account models.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row-level locking prevents concurrent balance modifications
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account for update: %w", err)
		}

		newBalance := account.Balance.Add(delta)
		now := time.Now().UTC()

		if err := tx.Model(&models.Account{}).
			Where("id = ?", accountID).
			Updates(map[string]interface{}{
				"balance":    newBalance,
				"version":    gorm.Expr("version + 1"),
				"updated_at": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}

		account.Balance = newBalance
		account.Version++
		account.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}
