package repositories

import (
	"context"

	"gorm.io/gorm"
)

// ledgerStore implements LedgerStoreInterface on top of gorm transactions
type ledgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates a store whose WithinTx binds the ledger repositories
// to a single database transaction
func NewLedgerStore(db *gorm.DB) LedgerStoreInterface {
	return &ledgerStore{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise
func (s *ledgerStore) WithinTx(ctx context.Context, fn func(repos LedgerRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(LedgerRepositories{
			Transactions:    NewTransactionRepository(tx),
			Balances:        NewAccountRepository(tx),
			Reconciliations: NewReconciliationRepository(tx),
		})
	})
}
