package handlers

import (
	"log/slog"
	"net/http"

	"smb-accounting/internal/errors"
	"smb-accounting/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers report failures through one of three helpers:
//
// 1. SendError - request problems detected in the handler itself (4xx)
//    - Malformed body: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Bad path or query values: SendError(c, errors.ValidationInvalidFormat)
//    - Missing user context: SendError(c, errors.AuthMissingToken)
//
// 2. SendServiceError - any error returned by a service. The error is
//    classified with errors.FromServiceError; anything outside the service
//    taxonomy becomes SYSTEM_001 without leaking internals.
//
// 3. SendSystemError - internal failures not produced by a service
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use the helpers above
//    - Direct c.JSON() for errors
//    - return err without wrapping

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendServiceError maps a service error onto its API code
func SendServiceError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	if _, ok := errors.FromServiceError(err); !ok {
		slog.ErrorContext(c.Request().Context(), "unclassified service error",
			"error", err,
			"trace_id", traceID,
			"path", c.Path(),
		)
	}
	errorResponse := errors.NewServiceErrorResponse(err, traceID)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// sendValidationError reports struct validation failures per field
func sendValidationError(c echo.Context, err error) error {
	fieldErrors := validation.FieldErrors(err)
	if len(fieldErrors) == 0 {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	errorResponse := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "system error",
		"error", err,
		"trace_id", traceID,
	)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
