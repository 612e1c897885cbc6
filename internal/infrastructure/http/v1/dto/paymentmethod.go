package dto

import (
	"protheo/internal/core/entity"
	"protheo/internal/core/types"
	"protheo/internal/domain/catalogs/paymentmethod"
)

// CreatePaymentMethodRequest for creating a payment method.
type CreatePaymentMethodRequest struct {
	Name            string             `json:"name" binding:"required"`
	Type            paymentmethod.Type `json:"type" binding:"required"`
	Active          *bool              `json:"active"`
	DiscountPercent *types.Percent     `json:"discountPercent"`
}

// ToEntity converts the request to a domain entity. Active defaults to
// true when omitted.
func (r CreatePaymentMethodRequest) ToEntity() *paymentmethod.PaymentMethod {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &paymentmethod.PaymentMethod{
		Base:            entity.NewBase(),
		Name:            r.Name,
		Type:            r.Type,
		Active:          active,
		DiscountPercent: r.DiscountPercent,
	}
}

// UpdatePaymentMethodRequest for updating a payment method.
type UpdatePaymentMethodRequest struct {
	Name            string             `json:"name" binding:"required"`
	Type            paymentmethod.Type `json:"type" binding:"required"`
	Active          bool               `json:"active"`
	DiscountPercent *types.Percent     `json:"discountPercent"`
}

// ApplyTo applies the request to an existing entity.
func (r UpdatePaymentMethodRequest) ApplyTo(m *paymentmethod.PaymentMethod) {
	m.Name = r.Name
	m.Type = r.Type
	m.Active = r.Active
	m.DiscountPercent = r.DiscountPercent
	m.Touch()
}
