// Package dto provides Data Transfer Objects for API requests/responses.
// Domain entities carry their own json tags and serve as response bodies;
// the types here shape incoming payloads.
package dto

import (
	"protheo/internal/core/id"
)

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ListResponse wraps a full snapshot list.
type ListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}
