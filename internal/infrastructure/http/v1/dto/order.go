package dto

import (
	"time"

	"protheo/internal/core/id"
	"protheo/internal/core/types"
	"protheo/internal/domain/documents/order"
	"protheo/internal/domain/pricing"
)

// CreateOrderRequest for creating a service order. Pricing fields are
// not accepted; discount and total are computed server-side. UnitValue
// zero or omitted means "take the catalog price".
type CreateOrderRequest struct {
	DentistName     string       `json:"dentistName" binding:"required"`
	PatientName     string       `json:"patientName"`
	ServiceType     string       `json:"serviceType" binding:"required"`
	Material        string       `json:"material"`
	Quantity        int          `json:"quantity" binding:"required,min=1"`
	UnitValue       types.Money  `json:"unitValue"`
	Status          order.Status `json:"status"`
	EntryDate       *time.Time   `json:"entryDate"`
	DueDate         time.Time    `json:"dueDate"`
	PaymentMethodID *id.ID       `json:"paymentMethodId"`
	Notes           *string      `json:"notes"`
}

// ToEntity converts the request to a domain entity.
func (r CreateOrderRequest) ToEntity() *order.Order {
	o := order.New(r.DentistName, r.PatientName)
	o.ServiceType = r.ServiceType
	o.Material = r.Material
	o.Quantity = r.Quantity
	o.UnitValue = r.UnitValue
	if r.Status != "" {
		o.Status = r.Status
	}
	if r.EntryDate != nil {
		o.EntryDate = *r.EntryDate
	}
	o.DueDate = r.DueDate
	o.PaymentMethodID = r.PaymentMethodID
	o.Notes = r.Notes
	return o
}

// UpdateOrderRequest for updating a service order.
type UpdateOrderRequest struct {
	DentistName     string       `json:"dentistName" binding:"required"`
	PatientName     string       `json:"patientName"`
	ServiceType     string       `json:"serviceType" binding:"required"`
	Material        string       `json:"material"`
	Quantity        int          `json:"quantity" binding:"required,min=1"`
	UnitValue       types.Money  `json:"unitValue"`
	Status          order.Status `json:"status"`
	EntryDate       *time.Time   `json:"entryDate"`
	DueDate         time.Time    `json:"dueDate"`
	PaymentMethodID *id.ID       `json:"paymentMethodId"`
	Notes           *string      `json:"notes"`
}

// ApplyTo applies the request to an existing entity.
func (r UpdateOrderRequest) ApplyTo(o *order.Order) {
	o.DentistName = r.DentistName
	o.PatientName = r.PatientName
	o.ServiceType = r.ServiceType
	o.Material = r.Material
	o.Quantity = r.Quantity
	o.UnitValue = r.UnitValue
	o.Status = r.Status
	if r.EntryDate != nil {
		o.EntryDate = *r.EntryDate
	}
	o.DueDate = r.DueDate
	o.PaymentMethodID = r.PaymentMethodID
	o.Notes = r.Notes
	o.Touch()
}

// QuoteRequest prices a draft order without persisting it. Editing
// reproduces the pricing rules applied when an existing order is saved.
type QuoteRequest struct {
	ServiceType     string      `json:"serviceType" binding:"required"`
	Quantity        int         `json:"quantity" binding:"required,min=1"`
	UnitValue       types.Money `json:"unitValue"`
	PaymentMethodID *id.ID      `json:"paymentMethodId"`
	Editing         bool        `json:"editing"`
}

// ToDraft builds a throwaway order carrying only the pricing inputs.
func (r QuoteRequest) ToDraft() *order.Order {
	return &order.Order{
		ServiceType:     r.ServiceType,
		Quantity:        r.Quantity,
		UnitValue:       r.UnitValue,
		PaymentMethodID: r.PaymentMethodID,
	}
}

// QuoteResponse carries the computed pricing, including the unit value
// after any catalog prefill.
type QuoteResponse struct {
	UnitValue     types.Money `json:"unitValue"`
	Subtotal      types.Money `json:"subtotal"`
	DiscountValue types.Money `json:"discountValue"`
	TotalValue    types.Money `json:"totalValue"`
}

// FromQuote creates a QuoteResponse from computed totals.
func FromQuote(totals pricing.Totals, unitValue types.Money) QuoteResponse {
	return QuoteResponse{
		UnitValue:     unitValue,
		Subtotal:      totals.Subtotal,
		DiscountValue: totals.DiscountValue,
		TotalValue:    totals.TotalValue,
	}
}
