package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "CHECKING"
	AccountTypeSavings    = "SAVINGS"
	AccountTypeCreditCard = "CREDIT_CARD"
	AccountTypeCash       = "CASH"
	AccountTypeInvestment = "INVESTMENT"
	AccountTypeOther      = "OTHER"

	DefaultCurrency = "USD"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter ISO code")

	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Account is a bank account whose balance tracks the signed sum of its transactions.
// Balance is written only by the ledger.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	AccountNumber string          `gorm:"type:varchar(34)" json:"account_number,omitempty"`
	AccountType   string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Institution   string          `gorm:"type:varchar(100)" json:"institution,omitempty"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Version       int             `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	if a.Version == 0 {
		a.Version = 1
	}

	// Set timestamps if not already set (for tests)
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return errors.New("account name is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if !currencyRegex.MatchString(a.Currency) {
		return ErrInvalidCurrency
	}

	return nil
}

// ApplyDelta adds a signed delta to the balance and returns the new value.
func (a *Account) ApplyDelta(delta decimal.Decimal) decimal.Decimal {
	a.Balance = a.Balance.Add(delta)
	return a.Balance
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard,
		AccountTypeCash, AccountTypeInvestment, AccountTypeOther:
		return true
	default:
		return false
	}
}
