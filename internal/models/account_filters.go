package models

import (
	"github.com/google/uuid"
)

// AccountFilters contains filter criteria for account queries
type AccountFilters struct {
	UserID      *uuid.UUID
	AccountType *string
	Currency    *string
}
