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

var ErrReportNotFound = errors.New("financial report not found")

// reportRepository implements ReportRepositoryInterface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new financial report repository
func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

// Create persists a financial report
func (r *reportRepository) Create(ctx context.Context, report *models.FinancialReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create financial report: %w", err)
	}
	return nil
}

// GetByID retrieves a financial report by ID
func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FinancialReport, error) {
	var report models.FinancialReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get financial report: %w", err)
	}
	return &report, nil
}

// Update overwrites every column of the report, including data
func (r *reportRepository) Update(ctx context.Context, report *models.FinancialReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.FinancialReport{}).
		Where("id = ?", report.ID).
		Updates(map[string]interface{}{
			"name":       report.Name,
			"type":       report.Type,
			"period":     report.Period,
			"start_date": report.StartDate.UTC(),
			"end_date":   report.EndDate.UTC(),
			"data":       report.Data,
			"updated_at": report.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update financial report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// List returns reports newest first, optionally by type
func (r *reportRepository) List(ctx context.Context, reportType *string) ([]models.FinancialReport, error) {
	var reports []models.FinancialReport

	query := r.db.WithContext(ctx).Model(&models.FinancialReport{})
	if reportType != nil {
		query = query.Where("type = ?", *reportType)
	}

	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list financial reports: %w", err)
	}
	return reports, nil
}

// Delete removes a financial report
func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FinancialReport{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete financial report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
