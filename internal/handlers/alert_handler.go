package handlers

import (
	"net/http"

	"smb-accounting/internal/dto"
	"smb-accounting/internal/errors"
	"smb-accounting/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandler serves alerts and the rules that produce them
type AlertHandler struct {
	alerts  services.AlertServiceInterface
	configs services.AlertConfigurationServiceInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alerts services.AlertServiceInterface, configs services.AlertConfigurationServiceInterface) *AlertHandler {
	return &AlertHandler{
		alerts:  alerts,
		configs: configs,
	}
}

// ListAlerts returns the caller's alerts, newest first
// @Summary List alerts
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(UNREAD, READ)
// @Success 200 {object} SuccessResponse{data=[]models.Alert} "Alerts"
// @Failure 400 {object} errors.ErrorResponse "ALERT_004 - Invalid status"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	alerts, err := h.alerts.ListAlerts(c.Request().Context(), userID, optionalQuery(c, "status"))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: alerts,
		Meta: map[string]int{"count": len(alerts)},
	})
}

// MarkAlertRead marks one alert as read
// @Summary Mark alert as read
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alert ID (UUID)"
// @Success 200 {object} models.Alert "Updated alert"
// @Failure 404 {object} errors.ErrorResponse "ALERT_001 - Alert not found"
// @Router /alerts/{id}/read [patch]
func (h *AlertHandler) MarkAlertRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	alert, err := h.alerts.MarkAsRead(c.Request().Context(), id, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, alert)
}

// MarkAllAlertsRead marks every unread alert of the caller as read
// @Summary Mark all alerts as read
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MarkAllReadResponse "Number of alerts updated"
// @Router /alerts/read-all [patch]
func (h *AlertHandler) MarkAllAlertsRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	updated, err := h.alerts.MarkAllAsRead(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}

// CreateConfiguration adds an alert rule
// @Summary Create alert configuration
// @Tags Alert Configurations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAlertConfigurationRequest true "Alert rule"
// @Success 201 {object} models.AlertConfiguration "Created rule"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or ALERT_005 - Negative threshold"
// @Router /alert-configurations [post]
func (h *AlertHandler) CreateConfiguration(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAlertConfigurationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	config, err := h.configs.CreateConfiguration(c.Request().Context(), services.CreateAlertConfigurationInput{
		UserID:    userID,
		Type:      req.Type,
		Threshold: req.Threshold,
		Active:    req.Active,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, config)
}

// ListConfigurations returns the caller's alert rules
// @Summary List alert configurations
// @Tags Alert Configurations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.AlertConfiguration} "Rules"
// @Router /alert-configurations [get]
func (h *AlertHandler) ListConfigurations(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	configs, err := h.configs.ListConfigurations(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: configs,
		Meta: map[string]int{"count": len(configs)},
	})
}

// GetConfiguration retrieves one alert rule
// @Summary Get alert configuration
// @Tags Alert Configurations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Success 200 {object} models.AlertConfiguration "Rule"
// @Failure 404 {object} errors.ErrorResponse "ALERT_002 - Configuration not found"
// @Router /alert-configurations/{id} [get]
func (h *AlertHandler) GetConfiguration(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	config, err := h.configs.GetConfiguration(c.Request().Context(), id, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, config)
}

// UpdateConfiguration changes an alert rule
// @Summary Update alert configuration
// @Tags Alert Configurations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Param request body dto.UpdateAlertConfigurationRequest true "Fields to change"
// @Success 200 {object} models.AlertConfiguration "Updated rule"
// @Failure 404 {object} errors.ErrorResponse "ALERT_002 - Configuration not found"
// @Router /alert-configurations/{id} [patch]
func (h *AlertHandler) UpdateConfiguration(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateAlertConfigurationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	config, err := h.configs.UpdateConfiguration(c.Request().Context(), id, userID, services.AlertConfigurationChanges{
		Type:           req.Type,
		Threshold:      req.Threshold,
		ClearThreshold: req.ClearThreshold,
		Active:         req.Active,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, config)
}

// ToggleConfiguration flips an alert rule between active and inactive
// @Summary Toggle alert configuration
// @Tags Alert Configurations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Success 200 {object} models.AlertConfiguration "Updated rule"
// @Failure 404 {object} errors.ErrorResponse "ALERT_002 - Configuration not found"
// @Router /alert-configurations/{id}/toggle [patch]
func (h *AlertHandler) ToggleConfiguration(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	config, err := h.configs.ToggleConfiguration(c.Request().Context(), id, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, config)
}

// DeleteConfiguration removes an alert rule
// @Summary Delete alert configuration
// @Tags Alert Configurations
// @Security BearerAuth
// @Param id path string true "Configuration ID (UUID)"
// @Success 204 "Rule deleted"
// @Failure 404 {object} errors.ErrorResponse "ALERT_002 - Configuration not found"
// @Router /alert-configurations/{id} [delete]
func (h *AlertHandler) DeleteConfiguration(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := h.configs.DeleteConfiguration(c.Request().Context(), id, userID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
