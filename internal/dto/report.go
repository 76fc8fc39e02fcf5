package dto

import "time"

// CreateReportRequest is the body of POST /reports
type CreateReportRequest struct {
	Name      string    `json:"name" validate:"required,max=200"`
	Type      string    `json:"type" validate:"required,report_type"`
	Period    string    `json:"period,omitempty" validate:"omitempty,report_period"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// UpdateReportRequest is the body of PATCH /reports/:id.
// Changing type or either date regenerates the report data.
type UpdateReportRequest struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Type      *string    `json:"type,omitempty" validate:"omitempty,report_type"`
	Period    *string    `json:"period,omitempty" validate:"omitempty,report_period"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// GenerateReportResponse is the body of GET /reports/generate
type GenerateReportResponse struct {
	Type      string                 `json:"type"`
	StartDate time.Time              `json:"start_date"`
	EndDate   time.Time              `json:"end_date"`
	Data      map[string]interface{} `json:"data"`
}
