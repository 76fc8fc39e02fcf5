package repositories

import (
	"context"
	"testing"
	"time"

	"smb-accounting/internal/database"
	"smb-accounting/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReconciliationRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    ReconciliationRepositoryInterface
	ctx     context.Context
	user    *models.User
	account *models.Account
}

func (s *ReconciliationRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReconciliationRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "reconcile@example.com")
	s.account = database.CreateTestAccount(s.T(), s.db, s.user, "Operating", decimal.NewFromInt(100))
}

func (s *ReconciliationRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestReconciliationRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReconciliationRepositorySuite))
}

func (s *ReconciliationRepositorySuite) newReconciliation(account *models.Account, statementDate time.Time) *models.Reconciliation {
	reconciliation := &models.Reconciliation{AccountID: account.ID, StatementDate: statementDate}
	s.Require().NoError(s.repo.Create(s.ctx, reconciliation))
	return reconciliation
}

func (s *ReconciliationRepositorySuite) TestCreate_DefaultsToInProgress() {
	reconciliation := s.newReconciliation(s.account, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))

	stored, err := s.repo.GetByIDForUpdate(s.ctx, reconciliation.ID)
	s.NoError(err)
	s.Equal(models.ReconciliationStatusInProgress, stored.Status)
	s.Nil(stored.CompletedAt)
}

func (s *ReconciliationRepositorySuite) TestCreate_RejectsUnknownStatus() {
	err := s.repo.Create(s.ctx, &models.Reconciliation{AccountID: s.account.ID, Status: "OPEN"})
	s.ErrorIs(err, models.ErrInvalidReconciliationStatus)
}

func (s *ReconciliationRepositorySuite) TestGet_NotFound() {
	_, err := s.repo.GetByIDForShare(s.ctx, uuid.New())
	s.ErrorIs(err, ErrReconciliationNotFound)
}

func (s *ReconciliationRepositorySuite) TestList_JoinsOwnerAndOrdersByStatement() {
	march := s.newReconciliation(s.account, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	april := s.newReconciliation(s.account, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	s.newReconciliation(database.CreateTestAccount(s.T(), s.db, other, "Other", decimal.Zero), time.Now())

	reconciliations, err := s.repo.List(s.ctx, models.ReconciliationFilters{UserID: &s.user.ID})
	s.NoError(err)
	s.Require().Len(reconciliations, 2)
	s.Equal(april.ID, reconciliations[0].ID)
	s.Equal(march.ID, reconciliations[1].ID)

	s.Require().NoError(s.repo.Complete(s.ctx, march.ID, time.Now()))
	status := models.ReconciliationStatusCompleted
	completed, err := s.repo.List(s.ctx, models.ReconciliationFilters{AccountID: &s.account.ID, Status: &status})
	s.NoError(err)
	s.Require().Len(completed, 1)
	s.Equal(march.ID, completed[0].ID)
}

func (s *ReconciliationRepositorySuite) TestComplete_OnlyOnce() {
	reconciliation := s.newReconciliation(s.account, time.Now())
	completedAt := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.Complete(s.ctx, reconciliation.ID, completedAt))

	stored, err := s.repo.GetByID(s.ctx, reconciliation.ID)
	s.NoError(err)
	s.True(stored.IsCompleted())
	s.Require().NotNil(stored.CompletedAt)
	s.True(completedAt.Equal(*stored.CompletedAt))

	s.ErrorIs(s.repo.Complete(s.ctx, reconciliation.ID, time.Now()), ErrReconciliationNotFound)
	s.ErrorIs(s.repo.Complete(s.ctx, uuid.New(), time.Now()), ErrReconciliationNotFound)
}

func (s *ReconciliationRepositorySuite) TestSetReconciliation() {
	reconciliation := s.newReconciliation(s.account, time.Now())
	transactions := NewTransactionRepository(s.db.DB)
	txn := &models.Transaction{
		AccountID: s.account.ID,
		UserID:    s.user.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(25),
	}
	s.Require().NoError(transactions.Create(s.ctx, txn))

	s.Require().NoError(transactions.SetReconciliation(s.ctx, txn.ID, &reconciliation.ID))
	attached, err := transactions.GetByID(s.ctx, txn.ID)
	s.NoError(err)
	s.Require().NotNil(attached.ReconciliationID)
	s.Equal(reconciliation.ID, *attached.ReconciliationID)
	s.Equal(txn.Version+1, attached.Version)

	s.Require().NoError(transactions.SetReconciliation(s.ctx, txn.ID, nil))
	detached, err := transactions.GetByID(s.ctx, txn.ID)
	s.NoError(err)
	s.Nil(detached.ReconciliationID)
	s.Equal(txn.Version+2, detached.Version)

	s.ErrorIs(transactions.SetReconciliation(s.ctx, uuid.New(), nil), ErrTransactionNotFound)
}
