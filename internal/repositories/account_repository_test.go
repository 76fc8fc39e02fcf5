package repositories

import (
	"context"
	"sync"
	"testing"

	"smb-accounting/internal/database"
	"smb-accounting/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountRepositoryInterface
	ctx      context.Context
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
	s.testUser = database.CreateTestUser(s.T(), s.db, "owner@example.com")
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.Account{
		UserID:      s.testUser.ID,
		Name:        "Operating",
		AccountType: models.AccountTypeChecking,
		Balance:     decimal.NewFromFloat(1000.00),
		Currency:    "USD",
	}

	err := s.repo.Create(s.ctx, account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal(1, account.Version)
	s.NotZero(account.CreatedAt)
}

func (s *AccountRepositorySuite) TestCreate_InvalidType() {
	account := &models.Account{
		UserID:      s.testUser.ID,
		Name:        "Operating",
		AccountType: "brokerage",
	}

	err := s.repo.Create(s.ctx, account)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAccountType)
}

func (s *AccountRepositorySuite) TestGetByID() {
	created := database.CreateTestAccount(s.T(), s.db, s.testUser, "Operating", decimal.NewFromInt(250))

	account, err := s.repo.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("Operating", account.Name)
	s.True(account.Balance.Equal(decimal.NewFromInt(250)))
}

func (s *AccountRepositorySuite) TestGetByID_NotFound() {
	account, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
	s.Nil(account)
}

func (s *AccountRepositorySuite) TestList_Filters() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	database.CreateTestAccount(s.T(), s.db, s.testUser, "Operating", decimal.NewFromInt(100))
	database.CreateTestAccount(s.T(), s.db, other, "Other operating", decimal.NewFromInt(50))

	savings := &models.Account{UserID: s.testUser.ID, Name: "Reserve", AccountType: models.AccountTypeSavings, Currency: "EUR"}
	s.Require().NoError(s.repo.Create(s.ctx, savings))

	all, err := s.repo.List(s.ctx, models.AccountFilters{})
	s.NoError(err)
	s.Len(all, 3)

	owned, err := s.repo.List(s.ctx, models.AccountFilters{UserID: &s.testUser.ID})
	s.NoError(err)
	s.Len(owned, 2)

	savingsType := models.AccountTypeSavings
	byType, err := s.repo.List(s.ctx, models.AccountFilters{AccountType: &savingsType})
	s.NoError(err)
	s.Require().Len(byType, 1)
	s.Equal("Reserve", byType[0].Name)

	eur := "EUR"
	byCurrency, err := s.repo.List(s.ctx, models.AccountFilters{UserID: &s.testUser.ID, Currency: &eur})
	s.NoError(err)
	s.Len(byCurrency, 1)
}

func (s *AccountRepositorySuite) TestAdjustBalance() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, "Operating", decimal.NewFromInt(1000))

	updated, err := s.repo.AdjustBalance(s.ctx, account.ID, decimal.NewFromInt(-1500))
	s.NoError(err)
	s.True(updated.Balance.Equal(decimal.NewFromInt(-500)), "got %s", updated.Balance)
	s.Equal(2, updated.Version)

	stored, err := s.repo.GetByID(s.ctx, account.ID)
	s.NoError(err)
	s.True(stored.Balance.Equal(decimal.NewFromInt(-500)))
	s.Equal(2, stored.Version)
}

func (s *AccountRepositorySuite) TestAdjustBalance_KeepsCents() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, "Operating", decimal.NewFromInt(100))

	updated, err := s.repo.AdjustBalance(s.ctx, account.ID, decimal.RequireFromString("-0.01"))
	s.NoError(err)
	s.True(updated.Balance.Equal(decimal.RequireFromString("99.99")))

	stored, err := s.repo.GetByID(s.ctx, account.ID)
	s.NoError(err)
	s.True(stored.Balance.Equal(decimal.RequireFromString("99.99")), "got %s", stored.Balance)
}

func (s *AccountRepositorySuite) TestAdjustBalance_NotFound() {
	updated, err := s.repo.AdjustBalance(s.ctx, uuid.New(), decimal.NewFromInt(10))
	s.ErrorIs(err, ErrAccountNotFound)
	s.Nil(updated)
}

func (s *AccountRepositorySuite) TestAdjustBalance_ConcurrentUpdatesAreNotLost() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, "Operating", decimal.Zero)

	const workers = 25
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			delta := decimal.NewFromInt(10)
			if i%5 == 0 {
				delta = decimal.NewFromInt(-5)
			}
			if _, err := s.repo.AdjustBalance(s.ctx, account.ID, delta); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	// 20 credits of 10 and 5 debits of 5
	stored, err := s.repo.GetByID(s.ctx, account.ID)
	s.NoError(err)
	s.True(stored.Balance.Equal(decimal.NewFromInt(175)), "got %s", stored.Balance)
	s.Equal(workers+1, stored.Version)
}
