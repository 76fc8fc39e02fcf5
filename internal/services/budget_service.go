package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"smb-accounting/internal/models"
	"smb-accounting/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBudgetInput carries the fields of a new budget. An empty Category
// counts every expense.
type CreateBudgetInput struct {
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Category  string
}

// BudgetChanges is a partial budget update. Nil fields keep their stored
// value and ClearCategory widens the budget to every expense.
type BudgetChanges struct {
	Name          *string
	Amount        *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	Category      *string
	ClearCategory bool
}

// budgetService implements BudgetServiceInterface
type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewBudgetService creates the budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *budgetService) CreateBudget(ctx context.Context, input CreateBudgetInput) (*models.Budget, error) {
	budget := &models.Budget{
		UserID:    input.UserID,
		Name:      strings.TrimSpace(input.Name),
		Amount:    input.Amount,
		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),
		Category:  optionalCategory(input.Category),
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, mapRepositoryError(err, "failed to create budget")
	}

	s.logger.InfoContext(ctx, "budget created", "budget_id", budget.ID, "user_id", budget.UserID)
	return budget, nil
}

// GetBudget returns one of the user's budgets
func (s *budgetService) GetBudget(ctx context.Context, id, userID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get budget")
	}
	if budget.UserID != userID {
		return nil, ErrBudgetNotFound
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID uuid.UUID, category *string) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.List(ctx, models.BudgetFilters{UserID: &userID, Category: category})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list budgets")
	}
	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, id, userID uuid.UUID, changes BudgetChanges) (*models.Budget, error) {
	budget, err := s.GetBudget(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		budget.Name = strings.TrimSpace(*changes.Name)
	}
	if changes.Amount != nil {
		budget.Amount = *changes.Amount
	}
	if changes.StartDate != nil {
		budget.StartDate = changes.StartDate.UTC()
	}
	if changes.EndDate != nil {
		budget.EndDate = changes.EndDate.UTC()
	}
	if changes.Category != nil {
		budget.Category = optionalCategory(*changes.Category)
	}
	if changes.ClearCategory {
		budget.Category = nil
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Update(ctx, budget); err != nil {
		return nil, mapRepositoryError(err, "failed to update budget")
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.GetBudget(ctx, id, userID); err != nil {
		return err
	}
	if err := s.budgetRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete budget")
	}
	return nil
}

// GetBudgetReport aggregates the expenses that count against the budget.
// Store failures surface as ErrUnavailable.
func (s *budgetService) GetBudgetReport(ctx context.Context, id, userID uuid.UUID) (*models.BudgetReport, error) {
	budget, err := s.GetBudget(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	expenses, err := s.transactionRepo.List(ctx, budget.Filters())
	if err != nil {
		s.metrics.IncrementCounter("budget.report", map[string]string{"status": "failed"})
		s.logger.ErrorContext(ctx, "budget report failed", "error", err, "budget_id", budget.ID)
		return nil, fmt.Errorf("%w: failed to load expenses: %w", ErrUnavailable, err)
	}

	report := BuildBudgetReport(*budget, expenses)
	s.metrics.IncrementCounter("budget.report", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("budget.report", time.Since(began))
	return &report, nil
}

func validateBudget(budget *models.Budget) error {
	if budget.Name == "" {
		return ErrInvalidBudgetName
	}
	if budget.Amount.IsNegative() {
		return ErrNegativeBudget
	}
	if budget.EndDate.Before(budget.StartDate) {
		return ErrInvalidBudgetWindow
	}
	return nil
}

func optionalCategory(category string) *string {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil
	}
	return &category
}
