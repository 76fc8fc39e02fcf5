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
)

const reportBreakerService = "report_store"

// CreateReportInput carries the fields of a new report. An empty Period is CUSTOM.
type CreateReportInput struct {
	Name      string
	Type      string
	Period    string
	StartDate time.Time
	EndDate   time.Time
}

// ReportChanges is a partial report update. Nil fields keep their stored value.
type ReportChanges struct {
	Name      *string
	Type      *string
	Period    *string
	StartDate *time.Time
	EndDate   *time.Time
}

// regenerates reports whether the changes touch what data is derived from
func (c ReportChanges) regenerates() bool {
	return c.Type != nil || c.StartDate != nil || c.EndDate != nil
}

// reportService implements ReportServiceInterface
type reportService struct {
	reportRepo      repositories.ReportRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	breaker         CircuitBreakerInterface
	metrics         MetricsRecorderInterface
	auditLogger     AuditLoggerInterface
	logger          *slog.Logger
}

// NewReportService creates the report aggregator. The breaker guards the
// transaction and account reads used during generation.
func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	return &reportService{
		reportRepo:      reportRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		breaker:         breaker,
		metrics:         metrics,
		auditLogger:     auditLogger,
		logger:          logger,
	}
}

// NewReportCircuitBreaker creates the breaker for report reads and reports
// its transitions to the audit log and the state gauge.
func NewReportCircuitBreaker(config CircuitBreakerConfig, metrics MetricsRecorderInterface, auditLogger AuditLoggerInterface) CircuitBreakerInterface {
	config.OnStateChange = func(from, to CircuitBreakerState) {
		auditLogger.LogCircuitBreakerStateChange(context.Background(), reportBreakerService, from.String(), to.String())
		metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": reportBreakerService})
	}
	return NewCircuitBreaker(config)
}

// GenerateReport aggregates the report over [start, end]. Store failures and
// an open breaker surface as ErrUnavailable.
func (s *reportService) GenerateReport(ctx context.Context, reportType string, start, end time.Time) (models.ReportData, error) {
	if !models.IsValidReportType(reportType) {
		return nil, ErrUnsupportedReportType
	}
	start, end = start.UTC(), end.UTC()
	if end.Before(start) {
		return nil, ErrInvalidReportWindow
	}

	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter("report.generated", map[string]string{"type": reportType, "status": "rejected"})
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, ErrCircuitBreakerOpen)
	}

	began := time.Now()
	report, err := s.aggregate(ctx, reportType, start, end)
	if err != nil {
		s.breaker.RecordFailure()
		s.metrics.IncrementCounter("report.generated", map[string]string{"type": reportType, "status": "failed"})
		s.logger.ErrorContext(ctx, "report generation failed",
			"error", err,
			"type", reportType,
			"start_date", start,
			"end_date", end)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	s.breaker.RecordSuccess()

	data, err := models.NewReportData(report)
	if err != nil {
		return nil, err
	}

	duration := time.Since(began)
	s.metrics.IncrementCounter("report.generated", map[string]string{"type": reportType, "status": "success"})
	s.metrics.RecordProcessingTime("report.generate", duration)
	s.auditLogger.LogReportGenerated(ctx, reportType, start, end, duration.Milliseconds())

	return data, nil
}

func (s *reportService) aggregate(ctx context.Context, reportType string, start, end time.Time) (interface{}, error) {
	switch reportType {
	case models.ReportTypeIncomeStatement:
		transactions, err := s.transactionRepo.List(ctx, models.InWindow(start, end))
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		return BuildIncomeStatement(transactions), nil

	case models.ReportTypeBalanceSheet:
		accounts, err := s.accountRepo.List(ctx, models.AccountFilters{})
		if err != nil {
			return nil, fmt.Errorf("failed to load accounts: %w", err)
		}
		return BuildBalanceSheet(accounts, end), nil

	case models.ReportTypeCashFlow:
		filters := models.InWindow(start, end)
		filters.SortBy = models.SortByDateAsc
		transactions, err := s.transactionRepo.List(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		return BuildCashFlow(transactions, start, end), nil
	}

	return nil, ErrUnsupportedReportType
}

// CreateReport generates the data and persists the report. Nothing is stored
// when generation fails.
func (s *reportService) CreateReport(ctx context.Context, input CreateReportInput) (*models.FinancialReport, error) {
	report := &models.FinancialReport{
		Name:      strings.TrimSpace(input.Name),
		Type:      input.Type,
		Period:    input.Period,
		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),
	}
	if report.Period == "" {
		report.Period = models.ReportPeriodCustom
	}
	if err := validateReportFields(report); err != nil {
		return nil, err
	}

	data, err := s.GenerateReport(ctx, report.Type, report.StartDate, report.EndDate)
	if err != nil {
		return nil, err
	}
	report.Data = data

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, mapRepositoryError(err, "failed to create report")
	}

	s.logger.InfoContext(ctx, "financial report created", "report_id", report.ID, "type", report.Type)
	return report, nil
}

// RegenerateReport applies changes to a stored report. When type or window
// change the data is rebuilt whole, falling back to stored values for fields
// not in changes.
func (s *reportService) RegenerateReport(ctx context.Context, id uuid.UUID, changes ReportChanges) (*models.FinancialReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get report")
	}

	if changes.Name != nil {
		report.Name = strings.TrimSpace(*changes.Name)
	}
	if changes.Period != nil {
		report.Period = *changes.Period
	}
	if changes.Type != nil {
		report.Type = *changes.Type
	}
	if changes.StartDate != nil {
		report.StartDate = changes.StartDate.UTC()
	}
	if changes.EndDate != nil {
		report.EndDate = changes.EndDate.UTC()
	}
	if err := validateReportFields(report); err != nil {
		return nil, err
	}

	if changes.regenerates() {
		data, err := s.GenerateReport(ctx, report.Type, report.StartDate, report.EndDate)
		if err != nil {
			return nil, err
		}
		report.Data = data
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, mapRepositoryError(err, "failed to update report")
	}
	return report, nil
}

func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.FinancialReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get report")
	}
	return report, nil
}

// ListReports returns reports newest first, optionally of one type
func (s *reportService) ListReports(ctx context.Context, reportType *string) ([]models.FinancialReport, error) {
	if reportType != nil && !models.IsValidReportType(*reportType) {
		return nil, ErrUnsupportedReportType
	}

	reports, err := s.reportRepo.List(ctx, reportType)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list reports")
	}
	return reports, nil
}

func (s *reportService) DeleteReport(ctx context.Context, id uuid.UUID) error {
	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete report")
	}
	return nil
}

func validateReportFields(report *models.FinancialReport) error {
	if report.Name == "" {
		return ErrInvalidReportName
	}
	if !models.IsValidReportType(report.Type) {
		return ErrUnsupportedReportType
	}
	if !models.IsValidReportPeriod(report.Period) {
		return ErrInvalidReportPeriod
	}
	if report.EndDate.Before(report.StartDate) {
		return ErrInvalidReportWindow
	}
	return nil
}
