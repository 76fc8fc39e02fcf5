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

type AlertRepositorySuite struct {
	suite.Suite
	db        *database.DB
	alerts    AlertRepositoryInterface
	configs   AlertConfigurationRepositoryInterface
	ctx       context.Context
	user      *models.User
	otherUser *models.User
}

func (s *AlertRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.alerts = NewAlertRepository(s.db.DB)
	s.configs = NewAlertConfigurationRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.otherUser = database.CreateTestUser(s.T(), s.db, "other@example.com")
}

func (s *AlertRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAlertRepositorySuite(t *testing.T) {
	suite.Run(t, new(AlertRepositorySuite))
}

func threshold(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func (s *AlertRepositorySuite) TestFindActiveByUserID_OnlyActiveInCreationOrder() {
	base := time.Now().UTC().Add(-time.Hour)
	first := &models.AlertConfiguration{UserID: s.user.ID, Type: models.AlertTypeLowBalance, Threshold: threshold(100), Active: true, CreatedAt: base}
	second := &models.AlertConfiguration{UserID: s.user.ID, Type: models.AlertTypeLowBalance, Threshold: threshold(50), Active: true, CreatedAt: base.Add(time.Minute)}
	inactive := &models.AlertConfiguration{UserID: s.user.ID, Type: models.AlertTypeHighExpense, Threshold: threshold(10), Active: false, CreatedAt: base.Add(2 * time.Minute)}
	foreign := &models.AlertConfiguration{UserID: s.otherUser.ID, Type: models.AlertTypeLowBalance, Threshold: threshold(1), Active: true}

	for _, c := range []*models.AlertConfiguration{first, second, inactive, foreign} {
		s.Require().NoError(s.configs.Create(s.ctx, c))
	}

	active, err := s.configs.FindActiveByUserID(s.ctx, s.user.ID)
	s.NoError(err)
	s.Require().Len(active, 2)
	s.Equal(first.ID, active[0].ID)
	s.Equal(second.ID, active[1].ID)
	s.True(active[0].Threshold.Equal(decimal.NewFromInt(100)))

	all, err := s.configs.ListByUserID(s.ctx, s.user.ID)
	s.NoError(err)
	s.Len(all, 3)
}

func (s *AlertRepositorySuite) TestConfiguration_UpdateClearsThreshold() {
	config := &models.AlertConfiguration{UserID: s.user.ID, Type: models.AlertTypeHighExpense, Threshold: threshold(500), Active: true}
	s.Require().NoError(s.configs.Create(s.ctx, config))

	config.Threshold = nil
	s.NoError(s.configs.Update(s.ctx, config))

	stored, err := s.configs.GetByID(s.ctx, config.ID)
	s.NoError(err)
	s.Nil(stored.Threshold)
	s.False(stored.HasThreshold())
}

func (s *AlertRepositorySuite) TestConfiguration_NotFound() {
	_, err := s.configs.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAlertConfigurationNotFound)

	s.ErrorIs(s.configs.Delete(s.ctx, uuid.New()), ErrAlertConfigurationNotFound)

	missing := &models.AlertConfiguration{ID: uuid.New(), UserID: s.user.ID, Type: models.AlertTypeLowBalance}
	s.ErrorIs(s.configs.Update(s.ctx, missing), ErrAlertConfigurationNotFound)
}

func (s *AlertRepositorySuite) TestAlertLifecycle() {
	older := &models.Alert{UserID: s.user.ID, Type: models.AlertTypeLowBalance, Message: "older", CreatedAt: time.Now().UTC().Add(-time.Minute)}
	newer := &models.Alert{UserID: s.user.ID, Type: models.AlertTypeHighExpense, Message: "newer"}
	foreign := &models.Alert{UserID: s.otherUser.ID, Type: models.AlertTypeHighExpense, Message: "foreign"}
	for _, a := range []*models.Alert{older, newer, foreign} {
		s.Require().NoError(s.alerts.Create(s.ctx, a))
		s.Equal(models.AlertStatusUnread, a.Status)
	}

	listed, err := s.alerts.ListByUserID(s.ctx, s.user.ID, nil)
	s.NoError(err)
	s.Require().Len(listed, 2)
	s.Equal("newer", listed[0].Message)

	s.NoError(s.alerts.MarkAsRead(s.ctx, older.ID))

	unread := models.AlertStatusUnread
	stillUnread, err := s.alerts.ListByUserID(s.ctx, s.user.ID, &unread)
	s.NoError(err)
	s.Require().Len(stillUnread, 1)
	s.Equal(newer.ID, stillUnread[0].ID)

	updated, err := s.alerts.MarkAllAsRead(s.ctx, s.user.ID)
	s.NoError(err)
	s.Equal(int64(1), updated)

	foreignStored, err := s.alerts.GetByID(s.ctx, foreign.ID)
	s.NoError(err)
	s.Equal(models.AlertStatusUnread, foreignStored.Status)
}

func (s *AlertRepositorySuite) TestMarkAsRead_NotFound() {
	s.ErrorIs(s.alerts.MarkAsRead(s.ctx, uuid.New()), ErrAlertNotFound)
}
