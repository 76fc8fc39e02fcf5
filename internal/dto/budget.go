package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBudgetRequest is the body of POST /budgets. Without a category every
// expense in the window counts.
type CreateBudgetRequest struct {
	Name      string          `json:"name" validate:"required,max=200"`
	Amount    decimal.Decimal `json:"amount" validate:"required,non_negative_amount"`
	StartDate time.Time       `json:"start_date" validate:"required"`
	EndDate   time.Time       `json:"end_date" validate:"required"`
	Category  string          `json:"category,omitempty" validate:"max=100"`
}

// UpdateBudgetRequest is the body of PATCH /budgets/:id.
// ClearCategory removes the category filter.
type UpdateBudgetRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Amount        *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,non_negative_amount"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	Category      *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	ClearCategory bool             `json:"clear_category,omitempty"`
}
