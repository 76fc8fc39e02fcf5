package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smb-accounting/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrReconciliationNotFound = errors.New("reconciliation not found")

type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository creates a new reconciliation repository
func NewReconciliationRepository(db *gorm.DB) ReconciliationRepositoryInterface {
	return &reconciliationRepository{db: db}
}

func (r *reconciliationRepository) Create(ctx context.Context, reconciliation *models.Reconciliation) error {
	if err := r.db.WithContext(ctx).Create(reconciliation).Error; err != nil {
		return fmt.Errorf("failed to create reconciliation: %w", err)
	}
	return nil
}

func (r *reconciliationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate locks the reconciliation row until the surrounding
// database transaction ends
func (r *reconciliationRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetByIDForShare takes a shared lock so the status cannot change until the
// surrounding database transaction ends
func (r *reconciliationRepository) GetByIDForShare(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), id)
}

func (r *reconciliationRepository) get(query *gorm.DB, id uuid.UUID) (*models.Reconciliation, error) {
	var reconciliation models.Reconciliation
	if err := query.Where("id = ?", id).First(&reconciliation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReconciliationNotFound
		}
		return nil, fmt.Errorf("failed to get reconciliation: %w", err)
	}
	return &reconciliation, nil
}

// List returns reconciliations newest statement first
func (r *reconciliationRepository) List(ctx context.Context, filters models.ReconciliationFilters) ([]models.Reconciliation, error) {
	var reconciliations []models.Reconciliation

	query := r.db.WithContext(ctx).Model(&models.Reconciliation{})
	if filters.UserID != nil {
		query = query.Joins("JOIN accounts ON accounts.id = reconciliations.account_id").
			Where("accounts.user_id = ?", *filters.UserID)
	}
	if filters.AccountID != nil {
		query = query.Where("reconciliations.account_id = ?", *filters.AccountID)
	}
	if filters.Status != nil {
		query = query.Where("reconciliations.status = ?", *filters.Status)
	}

	if err := query.Order("reconciliations.statement_date DESC").Find(&reconciliations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reconciliations: %w", err)
	}
	return reconciliations, nil
}

// Complete moves an in-progress reconciliation to COMPLETED. A reconciliation
// that is missing or already completed is reported as not found.
func (r *reconciliationRepository) Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	completedAt = completedAt.UTC()
	result := r.db.WithContext(ctx).Model(&models.Reconciliation{}).
		Where("id = ? AND status = ?", id, models.ReconciliationStatusInProgress).
		Updates(map[string]interface{}{
			"status":       models.ReconciliationStatusCompleted,
			"completed_at": completedAt,
			"updated_at":   completedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete reconciliation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReconciliationNotFound
	}
	return nil
}
