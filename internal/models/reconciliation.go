package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReconciliationStatusInProgress = "IN_PROGRESS"
	ReconciliationStatusCompleted  = "COMPLETED"
)

var ErrInvalidReconciliationStatus = errors.New("invalid reconciliation status")

// Reconciliation groups transactions matched against a bank statement.
// Transactions attached to a completed reconciliation are frozen.
type Reconciliation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"account_id"`
	Status        string     `gorm:"type:varchar(20);not null;default:'IN_PROGRESS';index" json:"status"`
	StatementDate time.Time  `gorm:"not null" json:"statement_date"`
	Note          string     `gorm:"type:text" json:"note,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Reconciliation
func (r *Reconciliation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.Status == "" {
		r.Status = ReconciliationStatusInProgress
	}

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	if !IsValidReconciliationStatus(r.Status) {
		return ErrInvalidReconciliationStatus
	}
	return nil
}

// IsCompleted returns true once the reconciliation has been closed
func (r *Reconciliation) IsCompleted() bool {
	return r.Status == ReconciliationStatusCompleted
}

// IsValidReconciliationStatus checks if the status is valid
func IsValidReconciliationStatus(status string) bool {
	return status == ReconciliationStatusInProgress || status == ReconciliationStatusCompleted
}

// ReconciliationFilters contains filtering options for reconciliation queries.
// UserID matches the owner of the reconciled account.
type ReconciliationFilters struct {
	UserID    *uuid.UUID
	AccountID *uuid.UUID
	Status    *string
}

func (r *Reconciliation) TableName() string {
	return "reconciliations"
}
