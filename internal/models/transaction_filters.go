package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SortByDateDesc = "date_desc"
	SortByDateAsc  = "date_asc"
)

// TransactionFilters contains filtering options for transaction queries.
// Nil fields are not applied. StartDate and EndDate are inclusive.
type TransactionFilters struct {
	UserID    *uuid.UUID
	AccountID *uuid.UUID
	Type      *string
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	Offset    int
	Limit     int
}

// InWindow returns filters for every transaction dated within [start, end]
func InWindow(start, end time.Time) TransactionFilters {
	return TransactionFilters{
		StartDate: &start,
		EndDate:   &end,
	}
}
