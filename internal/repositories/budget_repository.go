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

var ErrBudgetNotFound = errors.New("budget not found")

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// List returns budgets with the latest start date first
func (r *budgetRepository) List(ctx context.Context, filters models.BudgetFilters) ([]models.Budget, error) {
	var budgets []models.Budget

	query := r.db.WithContext(ctx).Model(&models.Budget{})
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}

	if err := query.Order("start_date DESC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// Update overwrites the mutable columns of a budget
func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}

	budget.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.Budget{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"name":       budget.Name,
			"amount":     budget.Amount,
			"start_date": budget.StartDate.UTC(),
			"end_date":   budget.EndDate.UTC(),
			"category":   budget.Category,
			"updated_at": budget.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
