package models

import (
	"time"
)

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	SpouseName string `json:"spouse_name"`
	Married    bool   `json:"married"`
	AdvisorID  int64  `json:"owner_id" binding:"required"`
}

// UpdateClientRequest represents the request body for updating a client.
// Nil fields are left unchanged.
type UpdateClientRequest struct {
	ClientName *string `json:"client_name"`
	SpouseName *string `json:"spouse_name"`
	Married    *bool   `json:"married"`
}

// ScenarioPreviewRequest runs a scenario over assets supplied in the request
// without reading or writing any stored client
type ScenarioPreviewRequest struct {
	Kind       ScenarioKind `json:"kind" binding:"required"`
	ClientName string       `json:"client_name"`
	SpouseName string       `json:"spouse_name"`
	Assets     *RawAssets   `json:"assets"`
}

// ValidationPreviewRequest validates a plan against assets supplied in the
// request. Heirs fill the fiduciary pool when the plan carries none.
type ValidationPreviewRequest struct {
	Plan   EstatePlan `json:"plan"`
	Assets *RawAssets `json:"assets"`
	Heirs  HeirLists  `json:"heirs"`
}

// ResponseMeta identifies one calculation
type ResponseMeta struct {
	CalculationID string    `json:"calculation_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	Cached        bool      `json:"cached"`
}

// ScenarioResponse wraps a scenario with request metadata and warnings
type ScenarioResponse struct {
	Meta     ResponseMeta       `json:"meta"`
	Scenario *ScenarioContainer `json:"scenario"`
	Warnings []Warning          `json:"warnings,omitempty"`
}

// ValidationResponse wraps a validation result with request metadata and warnings
type ValidationResponse struct {
	Meta       ResponseMeta         `json:"meta"`
	Validation EstatePlanValidation `json:"validation"`
	Warnings   []Warning            `json:"warnings,omitempty"`
}

// ImportAssetsResponse reports a CSV asset import
type ImportAssetsResponse struct {
	Imported int              `json:"imported"`
	Assets   NormalizedAssets `json:"assets"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
