// Package settings provides the company settings singleton. There is at
// most one row; it is created lazily on the first save.
package settings

import (
	"context"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/types"
)

// CompanySettings holds the lab identity and global pricing knobs.
type CompanySettings struct {
	entity.Base

	Name    string  `db:"name" json:"name"`
	TaxID   *string `db:"tax_id" json:"taxId,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`

	// GlobalDiscount applies to new orders whose payment method carries
	// no discount of its own
	GlobalDiscount *types.Percent `db:"global_discount" json:"globalDiscount,omitempty"`
}

// Default returns the settings used before anything has been saved.
func Default() *CompanySettings {
	return &CompanySettings{
		Base: entity.NewBase(),
		Name: "Laboratório de Prótese",
	}
}

// Validate implements entity.Validatable.
func (s *CompanySettings) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("company name is required").
			WithDetail("field", "name")
	}

	if s.GlobalDiscount != nil && !types.ValidPercent(*s.GlobalDiscount) {
		return apperror.NewValidation("global discount must be between 0 and 100").
			WithDetail("field", "globalDiscount")
	}

	return nil
}
