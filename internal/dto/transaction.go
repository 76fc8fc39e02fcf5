package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /transactions
type CreateTransactionRequest struct {
	AccountID        uuid.UUID       `json:"account_id" validate:"required"`
	Type             string          `json:"type" validate:"required,transaction_type"`
	Amount           decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	Date             *time.Time      `json:"date,omitempty"`
	Category         string          `json:"category,omitempty" validate:"max=100"`
	Description      string          `json:"description,omitempty" validate:"max=1000"`
	Reference        string          `json:"reference,omitempty" validate:"max=100"`
	ReconciliationID *uuid.UUID      `json:"reconciliation_id,omitempty"`
}

// UpdateTransactionRequest is the body of PATCH /transactions/:id.
// Omitted fields keep their stored value. Version, when sent, must match.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,positive_amount"`
	Date        *time.Time       `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Version     *int             `json:"version,omitempty" validate:"omitempty,min=1"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"hasMore"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// TransactionResponse is the API view of a ledger entry
type TransactionResponse struct {
	ID               uuid.UUID  `json:"id"`
	AccountID        uuid.UUID  `json:"account_id"`
	Type             string     `json:"type"`
	Amount           string     `json:"amount"`
	Date             time.Time  `json:"date"`
	Category         string     `json:"category"`
	Description      string     `json:"description,omitempty"`
	Reference        string     `json:"reference,omitempty"`
	ReconciliationID *uuid.UUID `json:"reconciliation_id,omitempty"`
	Version          int        `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
