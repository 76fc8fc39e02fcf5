package handlers

import (
	"net/http"

	"smb-accounting/internal/dto"
	"smb-accounting/internal/errors"
	"smb-accounting/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles financial report requests
type ReportHandler struct {
	reports services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GenerateReport aggregates a report on the fly without storing it
// @Summary Generate report
// @Description Build an income statement, balance sheet or cash flow over [start_date, end_date]
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param type query string true "Report type" Enums(INCOME_STATEMENT, BALANCE_SHEET, CASH_FLOW)
// @Param start_date query string true "Window start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string true "Window end, inclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.GenerateReportResponse "Report data"
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Unsupported type or REPORT_003 - Invalid window"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Transaction store unavailable"
// @Router /reports/generate [get]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	reportType := c.QueryParam("type")
	if reportType == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("type is required"))
	}

	start, err := parseOptionalDate(c, "start_date", false)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	end, err := parseOptionalDate(c, "end_date", true)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if start == nil || end == nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("start_date and end_date are required"))
	}

	data, err := h.reports.GenerateReport(c.Request().Context(), reportType, *start, *end)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GenerateReportResponse{
		Type:      reportType,
		StartDate: *start,
		EndDate:   *end,
		Data:      data,
	})
}

// CreateReport generates and stores a report
// @Summary Create report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Report definition"
// @Success 201 {object} models.FinancialReport "Stored report"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Transaction store unavailable"
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req dto.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	report, err := h.reports.CreateReport(c.Request().Context(), services.CreateReportInput{
		Name:      req.Name,
		Type:      req.Type,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, report)
}

// ListReports returns stored reports, newest first
// @Summary List reports
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by report type" Enums(INCOME_STATEMENT, BALANCE_SHEET, CASH_FLOW)
// @Success 200 {object} SuccessResponse{data=[]models.FinancialReport} "Reports"
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Unsupported type"
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reports.ListReports(c.Request().Context(), optionalQuery(c, "type"))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: reports,
		Meta: map[string]int{"count": len(reports)},
	})
}

// GetReport retrieves a stored report
// @Summary Get report by ID
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} models.FinancialReport "Report"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - Report not found"
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	report, err := h.reports.GetReport(c.Request().Context(), id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// UpdateReport changes a stored report, regenerating data when type or window change
// @Summary Update report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param request body dto.UpdateReportRequest true "Fields to change"
// @Success 200 {object} models.FinancialReport "Updated report"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - Report not found"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Transaction store unavailable"
// @Router /reports/{id} [patch]
func (h *ReportHandler) UpdateReport(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	report, err := h.reports.RegenerateReport(c.Request().Context(), id, services.ReportChanges{
		Name:      req.Name,
		Type:      req.Type,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// DeleteReport removes a stored report
// @Summary Delete report
// @Tags Reports
// @Security BearerAuth
// @Param id path string true "Report ID (UUID)"
// @Success 204 "Report deleted"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - Report not found"
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := h.reports.DeleteReport(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
