// Package paymentmethod provides the payment method catalog. A method may
// carry its own discount percentage, which takes precedence over the global
// discount when an order is priced.
package paymentmethod

import (
	"context"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/types"
)

// Type classifies how the payment is settled.
type Type string

const (
	TypePix      Type = "pix"
	TypeCredit   Type = "credit"
	TypeDebit    Type = "debit"
	TypeCash     Type = "cash"
	TypeTransfer Type = "transfer"
)

// Valid reports whether the type is one of the known settlement kinds.
func (t Type) Valid() bool {
	switch t {
	case TypePix, TypeCredit, TypeDebit, TypeCash, TypeTransfer:
		return true
	}
	return false
}

// PaymentMethod represents one configured payment option.
type PaymentMethod struct {
	entity.Base

	Name string `db:"name" json:"name"`
	Type Type   `db:"type" json:"type"`

	// Active methods are offered when building an order
	Active bool `db:"active" json:"active"`

	// DiscountPercent, when set and positive, overrides the global discount
	DiscountPercent *types.Percent `db:"discount_percent" json:"discountPercent,omitempty"`
}

// New creates a PaymentMethod with generated ID, active by default.
func New(name string, typ Type) *PaymentMethod {
	return &PaymentMethod{
		Base:   entity.NewBase(),
		Name:   name,
		Type:   typ,
		Active: true,
	}
}

// HasDiscount reports whether the method carries a positive discount.
func (m *PaymentMethod) HasDiscount() bool {
	return m.DiscountPercent != nil && m.DiscountPercent.IsPositive()
}

// Validate implements entity.Validatable.
func (m *PaymentMethod) Validate(ctx context.Context) error {
	if m.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if !m.Type.Valid() {
		return apperror.NewValidation("invalid payment method type").
			WithDetail("field", "type").
			WithDetail("value", string(m.Type))
	}

	if m.DiscountPercent != nil && !types.ValidPercent(*m.DiscountPercent) {
		return apperror.NewValidation("discount percent must be between 0 and 100").
			WithDetail("field", "discountPercent")
	}

	return nil
}
