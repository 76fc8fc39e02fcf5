package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBudgetName   = errors.New("budget name is required")
	ErrNegativeBudget      = errors.New("budget amount cannot be negative")
	ErrInvalidBudgetWindow = errors.New("budget end date is before start date")
)

// Budget caps the expenses of one owner over a date window, optionally for a
// single category.
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(200);not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	StartDate time.Time       `gorm:"not null" json:"start_date"`
	EndDate   time.Time       `gorm:"not null" json:"end_date"`
	Category  *string         `gorm:"type:varchar(100);index" json:"category,omitempty"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		return ErrInvalidBudgetName
	}
	if b.Amount.IsNegative() {
		return ErrNegativeBudget
	}
	if b.EndDate.Before(b.StartDate) {
		return ErrInvalidBudgetWindow
	}
	return nil
}

// Filters returns the transaction filters that select what counts against
// the budget: the owner's expenses inside the window, in its category if set.
func (b *Budget) Filters() TransactionFilters {
	expense := TransactionTypeExpense
	filters := InWindow(b.StartDate, b.EndDate)
	filters.UserID = &b.UserID
	filters.Type = &expense
	filters.Category = b.Category
	return filters
}

func (b *Budget) TableName() string {
	return "budgets"
}

// BudgetFilters contains filtering options for budget queries
type BudgetFilters struct {
	UserID   *uuid.UUID
	Category *string
}

// BudgetReport compares a budget with what was actually spent
type BudgetReport struct {
	Budget           Budget          `json:"budget"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	Remaining        decimal.Decimal `json:"remaining"`
	PercentageUsed   decimal.Decimal `json:"percentageUsed"`
	TransactionCount int             `json:"transactionCount"`
}
