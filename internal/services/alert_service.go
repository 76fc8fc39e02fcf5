package services

import (
	"context"
	"errors"
	"log/slog"

	"smb-accounting/internal/models"
	"smb-accounting/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// alertService implements AlertServiceInterface
type alertService struct {
	alertRepo repositories.AlertRepositoryInterface
	logger    *slog.Logger
}

// NewAlertService creates the alert read-state service
func NewAlertService(alertRepo repositories.AlertRepositoryInterface, logger *slog.Logger) AlertServiceInterface {
	return &alertService{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

// ListAlerts returns a user's alerts newest first, optionally only one status
func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID, status *string) ([]models.Alert, error) {
	if status != nil && !models.IsValidAlertStatus(*status) {
		return nil, ErrInvalidAlertStatus
	}

	alerts, err := s.alertRepo.ListByUserID(ctx, userID, status)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list alerts")
	}
	return alerts, nil
}

// MarkAsRead marks one of the user's alerts as read
func (s *alertService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) (*models.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get alert")
	}
	if alert.UserID != userID {
		return nil, ErrAlertNotFound
	}
	if alert.IsRead() {
		return alert, nil
	}

	if err := s.alertRepo.MarkAsRead(ctx, id); err != nil {
		return nil, mapRepositoryError(err, "failed to mark alert as read")
	}

	alert.Status = models.AlertStatusRead
	return alert, nil
}

// MarkAllAsRead marks every unread alert of the user as read
func (s *alertService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.alertRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, mapRepositoryError(err, "failed to mark alerts as read")
	}

	s.logger.InfoContext(ctx, "alerts marked as read", "user_id", userID, "count", updated)
	return updated, nil
}

// CreateAlertConfigurationInput carries the fields of a new alert rule.
// A nil Active defaults to true.
type CreateAlertConfigurationInput struct {
	UserID    uuid.UUID
	Type      string
	Threshold *decimal.Decimal
	Active    *bool
}

// AlertConfigurationChanges is a partial update of an alert rule.
// ClearThreshold removes the threshold and wins over Threshold.
type AlertConfigurationChanges struct {
	Type           *string
	Threshold      *decimal.Decimal
	ClearThreshold bool
	Active         *bool
}

// alertConfigurationService implements AlertConfigurationServiceInterface
type alertConfigurationService struct {
	configRepo repositories.AlertConfigurationRepositoryInterface
	userRepo   repositories.UserRepositoryInterface
	logger     *slog.Logger
}

// NewAlertConfigurationService creates the alert rule service
func NewAlertConfigurationService(
	configRepo repositories.AlertConfigurationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *slog.Logger,
) AlertConfigurationServiceInterface {
	return &alertConfigurationService{
		configRepo: configRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (s *alertConfigurationService) CreateConfiguration(ctx context.Context, input CreateAlertConfigurationInput) (*models.AlertConfiguration, error) {
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, mapRepositoryError(err, "failed to get user")
	}

	config := &models.AlertConfiguration{
		UserID:    input.UserID,
		Type:      input.Type,
		Threshold: input.Threshold,
		Active:    true,
	}
	if input.Active != nil {
		config.Active = *input.Active
	}
	if err := validateConfiguration(config); err != nil {
		return nil, err
	}

	if err := s.configRepo.Create(ctx, config); err != nil {
		return nil, mapRepositoryError(err, "failed to create alert configuration")
	}

	s.logger.InfoContext(ctx, "alert configuration created",
		"configuration_id", config.ID,
		"user_id", config.UserID,
		"type", config.Type)
	return config, nil
}

func (s *alertConfigurationService) ListConfigurations(ctx context.Context, userID uuid.UUID) ([]models.AlertConfiguration, error) {
	configs, err := s.configRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list alert configurations")
	}
	return configs, nil
}

// GetConfiguration returns a configuration owned by userID
func (s *alertConfigurationService) GetConfiguration(ctx context.Context, id, userID uuid.UUID) (*models.AlertConfiguration, error) {
	config, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get alert configuration")
	}
	if config.UserID != userID {
		return nil, ErrAlertConfigurationNotFound
	}
	return config, nil
}

func (s *alertConfigurationService) UpdateConfiguration(ctx context.Context, id, userID uuid.UUID, changes AlertConfigurationChanges) (*models.AlertConfiguration, error) {
	config, err := s.GetConfiguration(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if changes.Type != nil {
		config.Type = *changes.Type
	}
	if changes.ClearThreshold {
		config.Threshold = nil
	} else if changes.Threshold != nil {
		config.Threshold = changes.Threshold
	}
	if changes.Active != nil {
		config.Active = *changes.Active
	}
	if err := validateConfiguration(config); err != nil {
		return nil, err
	}

	if err := s.configRepo.Update(ctx, config); err != nil {
		return nil, mapRepositoryError(err, "failed to update alert configuration")
	}
	return config, nil
}

// ToggleConfiguration flips the active flag
func (s *alertConfigurationService) ToggleConfiguration(ctx context.Context, id, userID uuid.UUID) (*models.AlertConfiguration, error) {
	config, err := s.GetConfiguration(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	config.Active = !config.Active
	if err := s.configRepo.Update(ctx, config); err != nil {
		return nil, mapRepositoryError(err, "failed to toggle alert configuration")
	}
	return config, nil
}

func (s *alertConfigurationService) DeleteConfiguration(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.GetConfiguration(ctx, id, userID); err != nil {
		return err
	}

	if err := s.configRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete alert configuration")
	}
	return nil
}

func validateConfiguration(config *models.AlertConfiguration) error {
	if err := config.Validate(); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidAlertType):
			return ErrInvalidAlertType
		case errors.Is(err, models.ErrNegativeThreshold):
			return ErrNegativeThreshold
		default:
			return err
		}
	}
	return nil
}
