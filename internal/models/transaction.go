package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"

	UncategorizedCategory = "Uncategorized"

	// AmountScale is the number of decimal places money columns keep
	AmountScale = 2
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

// Transaction is a single income or expense recorded against an account.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type             string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date             time.Time       `gorm:"not null;index" json:"date"`
	Category         string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	Reference        string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	ReconciliationID *uuid.UUID      `gorm:"type:uuid;index" json:"reconciliation_id,omitempty"`
	Version          int             `gorm:"not null;default:1" json:"version"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()

	if t.Date.IsZero() {
		t.Date = now
	}
	t.Date = t.Date.UTC()

	if t.Reference == "" {
		t.Reference = GenerateTransactionReference()
	}

	if t.Version == 0 {
		t.Version = 1
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Category) > 100 {
		return errors.New("category too long")
	}

	return nil
}

// BalanceEffect is the signed amount this transaction contributes to its account balance.
func (t *Transaction) BalanceEffect() decimal.Decimal {
	return SignedAmount(t.Amount, t.Type)
}

// Reversal is the delta that cancels BalanceEffect.
func (t *Transaction) Reversal() decimal.Decimal {
	return t.BalanceEffect().Neg()
}

// CategoryOrDefault returns the category, or "Uncategorized" when none is set.
func (t *Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return UncategorizedCategory
	}
	return t.Category
}

// IsExpense returns true for EXPENSE transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome returns true for INCOME transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// HasVersionConflict checks for version conflicts
func (t *Transaction) HasVersionConflict(currentVersion int) bool {
	return t.Version != currentVersion
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// SignedAmount returns +amount for INCOME and -amount for EXPENSE.
func SignedAmount(amount decimal.Decimal, transactionType string) decimal.Decimal {
	if transactionType == TransactionTypeExpense {
		return amount.Neg()
	}
	return amount
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().UTC().Format("20060102150405")
}
