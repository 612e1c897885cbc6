// Package client provides the client catalog: the dentists and clinics
// the lab works for.
package client

import (
	"context"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
)

// Status marks whether a client is still being served.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Client represents one dentist or clinic.
type Client struct {
	entity.Base

	Name    string `db:"name" json:"name"`
	Contact string `db:"contact" json:"contact"`

	Email        *string `db:"email" json:"email,omitempty"`
	TaxID        *string `db:"tax_id" json:"taxId,omitempty"`
	Registration *string `db:"registration" json:"registration,omitempty"`
	Specialty    *string `db:"specialty" json:"specialty,omitempty"`
	Address      *string `db:"address" json:"address,omitempty"`

	Status Status `db:"status" json:"status"`
}

// New creates a Client with generated ID, active by default.
func New(name, contact string) *Client {
	return &Client{
		Base:    entity.NewBase(),
		Name:    name,
		Contact: contact,
		Status:  StatusActive,
	}
}

// Validate implements entity.Validatable.
func (c *Client) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if c.Contact == "" {
		return apperror.NewValidation("contact is required").
			WithDetail("field", "contact")
	}

	if c.Status == "" {
		c.Status = StatusActive
	}
	if !c.Status.Valid() {
		return apperror.NewValidation("invalid client status").
			WithDetail("field", "status").
			WithDetail("value", string(c.Status))
	}

	return nil
}
