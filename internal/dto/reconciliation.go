package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateReconciliationRequest is the body of POST /reconciliations.
// StatementDate defaults to now.
type CreateReconciliationRequest struct {
	AccountID     uuid.UUID  `json:"account_id" validate:"required"`
	StatementDate *time.Time `json:"statement_date,omitempty"`
	Note          string     `json:"note,omitempty" validate:"max=1000"`
}
