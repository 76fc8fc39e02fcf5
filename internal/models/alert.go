package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AlertTypeLowBalance  = "LOW_BALANCE"
	AlertTypeHighExpense = "HIGH_EXPENSE"

	AlertStatusUnread = "UNREAD"
	AlertStatusRead   = "READ"
)

var (
	ErrInvalidAlertType   = errors.New("invalid alert type")
	ErrInvalidAlertStatus = errors.New("invalid alert status")
	ErrNegativeThreshold  = errors.New("threshold cannot be negative")
)

// AlertConfiguration is a user-defined rule describing when to notify the user.
// Type is an open set; the evaluator ignores types it does not know.
type AlertConfiguration struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Type      string           `gorm:"type:varchar(30);not null;index" json:"type"`
	Threshold *decimal.Decimal `gorm:"type:decimal(15,2)" json:"threshold,omitempty"`
	Active    bool             `gorm:"not null;default:true;index" json:"active"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for AlertConfiguration
func (c *AlertConfiguration) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the configuration fields
func (c *AlertConfiguration) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if c.Type == "" {
		return ErrInvalidAlertType
	}
	if c.Threshold != nil && c.Threshold.IsNegative() {
		return ErrNegativeThreshold
	}
	return nil
}

// HasThreshold reports whether a threshold is set
func (c *AlertConfiguration) HasThreshold() bool {
	return c.Threshold != nil
}

func (c *AlertConfiguration) TableName() string {
	return "alert_configurations"
}

// Alert is a notification emitted for a user.
type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"type:varchar(30);not null" json:"type"`
	Status    string    `gorm:"type:varchar(10);not null;default:'UNREAD';index" json:"status"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Alert
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AlertStatusUnread
	}

	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	if !IsValidAlertStatus(a.Status) {
		return ErrInvalidAlertStatus
	}
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	return nil
}

// IsRead returns true if the alert has been read
func (a *Alert) IsRead() bool {
	return a.Status == AlertStatusRead
}

func (a *Alert) TableName() string {
	return "alerts"
}

// IsValidAlertStatus checks if the alert status is valid
func IsValidAlertStatus(status string) bool {
	return status == AlertStatusUnread || status == AlertStatusRead
}

// IsKnownAlertType reports whether the evaluator has a rule for the type
func IsKnownAlertType(alertType string) bool {
	return alertType == AlertTypeLowBalance || alertType == AlertTypeHighExpense
}
