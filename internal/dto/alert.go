package dto

import "github.com/shopspring/decimal"

// CreateAlertConfigurationRequest is the body of POST /alert-configurations.
// Active defaults to true.
type CreateAlertConfigurationRequest struct {
	Type      string           `json:"type" validate:"required,max=30"`
	Threshold *decimal.Decimal `json:"threshold,omitempty" validate:"omitempty,non_negative_amount"`
	Active    *bool            `json:"active,omitempty"`
}

// UpdateAlertConfigurationRequest is the body of PATCH /alert-configurations/:id.
// ClearThreshold removes the threshold.
type UpdateAlertConfigurationRequest struct {
	Type           *string          `json:"type,omitempty" validate:"omitempty,min=1,max=30"`
	Threshold      *decimal.Decimal `json:"threshold,omitempty" validate:"omitempty,non_negative_amount"`
	ClearThreshold bool             `json:"clear_threshold,omitempty"`
	Active         *bool            `json:"active,omitempty"`
}

// MarkAllReadResponse reports how many alerts changed state
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
