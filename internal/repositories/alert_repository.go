package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smb-accounting/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAlertNotFound              = errors.New("alert not found")
	ErrAlertConfigurationNotFound = errors.New("alert configuration not found")
)

// alertRepository implements AlertRepositoryInterface
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) AlertRepositoryInterface {
	return &alertRepository{db: db}
}

// Create persists an alert
func (r *alertRepository) Create(ctx context.Context, alert *models.Alert) error {
	if err := r.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID retrieves an alert by ID
func (r *alertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return &alert, nil
}

// ListByUserID returns a user's alerts newest first, optionally by status
func (r *alertRepository) ListByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]models.Alert, error) {
	var alerts []models.Alert

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// MarkAsRead sets a single alert to READ
func (r *alertRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.AlertStatusRead,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark alert as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// MarkAllAsRead sets every unread alert of a user to READ
func (r *alertRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Alert{}).
		Where("user_id = ? AND status = ?", userID, models.AlertStatusUnread).
		Updates(map[string]interface{}{
			"status":     models.AlertStatusRead,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark alerts as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// alertConfigurationRepository implements AlertConfigurationRepositoryInterface
type alertConfigurationRepository struct {
	db *gorm.DB
}

// NewAlertConfigurationRepository creates a new alert configuration repository
func NewAlertConfigurationRepository(db *gorm.DB) AlertConfigurationRepositoryInterface {
	return &alertConfigurationRepository{db: db}
}

// Create persists an alert configuration. Every column is written so an
// explicit Active=false is not replaced by the column default.
func (r *alertConfigurationRepository) Create(ctx context.Context, config *models.AlertConfiguration) error {
	if err := r.db.WithContext(ctx).Select("*").Create(config).Error; err != nil {
		return fmt.Errorf("failed to create alert configuration: %w", err)
	}
	return nil
}

// GetByID retrieves an alert configuration by ID
func (r *alertConfigurationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AlertConfiguration, error) {
	var config models.AlertConfiguration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertConfigurationNotFound
		}
		return nil, fmt.Errorf("failed to get alert configuration: %w", err)
	}
	return &config, nil
}

// FindActiveByUserID returns a user's active configurations in creation order.
// The order is stable so first-match selection is deterministic.
func (r *alertConfigurationRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]models.AlertConfiguration, error) {
	var configs []models.AlertConfiguration
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at ASC").Order("id ASC").
		Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to find active alert configurations: %w", err)
	}
	return configs, nil
}

// ListByUserID returns all of a user's configurations, active or not
func (r *alertConfigurationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.AlertConfiguration, error) {
	var configs []models.AlertConfiguration
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to list alert configurations: %w", err)
	}
	return configs, nil
}

// Update saves threshold, type and active flag
func (r *alertConfigurationRepository) Update(ctx context.Context, config *models.AlertConfiguration) error {
	if err := config.Validate(); err != nil {
		return err
	}

	config.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.AlertConfiguration{}).
		Where("id = ?", config.ID).
		Updates(map[string]interface{}{
			"type":       config.Type,
			"threshold":  config.Threshold,
			"active":     config.Active,
			"updated_at": config.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update alert configuration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertConfigurationNotFound
	}
	return nil
}

// Delete removes an alert configuration
func (r *alertConfigurationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AlertConfiguration{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete alert configuration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertConfigurationNotFound
	}
	return nil
}
