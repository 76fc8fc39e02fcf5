package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportTypeIncomeStatement = "INCOME_STATEMENT"
	ReportTypeBalanceSheet    = "BALANCE_SHEET"
	ReportTypeCashFlow        = "CASH_FLOW"

	ReportPeriodMonthly   = "MONTHLY"
	ReportPeriodQuarterly = "QUARTERLY"
	ReportPeriodYearly    = "YEARLY"
	ReportPeriodCustom    = "CUSTOM"
)

var (
	ErrInvalidReportType   = errors.New("invalid report type")
	ErrInvalidReportPeriod = errors.New("invalid report period")
	ErrInvalidReportWindow = errors.New("report end date is before start date")
)

// FinancialReport is a persisted aggregate over a report window.
// Data is always produced whole by the aggregator.
type FinancialReport struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"type:varchar(200);not null" json:"name"`
	Type      string     `gorm:"type:varchar(30);not null;index" json:"type"`
	Period    string     `gorm:"type:varchar(20);not null" json:"period"`
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   time.Time  `gorm:"not null" json:"end_date"`
	Data      ReportData `gorm:"type:text" json:"data"`
	CreatedAt time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for FinancialReport
func (r *FinancialReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.Period == "" {
		r.Period = ReportPeriodCustom
	}

	r.StartDate = r.StartDate.UTC()
	r.EndDate = r.EndDate.UTC()

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// Validate validates the report fields
func (r *FinancialReport) Validate() error {
	if r.Name == "" {
		return errors.New("report name is required")
	}
	if !IsValidReportType(r.Type) {
		return ErrInvalidReportType
	}
	if !IsValidReportPeriod(r.Period) {
		return ErrInvalidReportPeriod
	}
	if r.EndDate.Before(r.StartDate) {
		return ErrInvalidReportWindow
	}
	return nil
}

func (r *FinancialReport) TableName() string {
	return "financial_reports"
}

// IsValidReportType checks if the report type is supported
func IsValidReportType(reportType string) bool {
	switch reportType {
	case ReportTypeIncomeStatement, ReportTypeBalanceSheet, ReportTypeCashFlow:
		return true
	default:
		return false
	}
}

// IsValidReportPeriod checks if the report period is valid
func IsValidReportPeriod(period string) bool {
	switch period {
	case ReportPeriodMonthly, ReportPeriodQuarterly, ReportPeriodYearly, ReportPeriodCustom:
		return true
	default:
		return false
	}
}
