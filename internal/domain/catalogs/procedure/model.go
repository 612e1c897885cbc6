// Package procedure provides the priced procedure catalog.
// A procedure is a template used to prefill order pricing; later price
// edits never retroactively change orders already written.
package procedure

import (
	"context"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/types"
)

// Procedure represents one catalog entry.
type Procedure struct {
	entity.Base

	// Code is a human-readable unique identifier (e.g. PRO-001)
	Code string `db:"code" json:"code"`

	// Name is the display name; orders reference procedures by this name
	Name string `db:"name" json:"name"`

	// BasePrice is the unit price suggested when building an order
	BasePrice types.Money `db:"base_price" json:"basePrice"`

	// Category groups entries in the catalog view
	Category *string `db:"category" json:"category,omitempty"`

	// DisplayOrder drives catalog listing order
	DisplayOrder int `db:"display_order" json:"displayOrder"`
}

// New creates a Procedure with generated ID.
func New(code, name string, basePrice types.Money) *Procedure {
	return &Procedure{
		Base:      entity.NewBase(),
		Code:      code,
		Name:      name,
		BasePrice: basePrice,
	}
}

// Validate implements entity.Validatable.
func (p *Procedure) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code can be auto-generated, so it is optional at creation

	if p.BasePrice.IsNegative() {
		return apperror.NewValidation("base price cannot be negative").
			WithDetail("field", "basePrice")
	}

	if p.DisplayOrder < 0 {
		return apperror.NewValidation("display order cannot be negative").
			WithDetail("field", "displayOrder")
	}

	return nil
}
