// Package order provides service orders, the central document of the lab.
// Pricing is computed when the order is written and stored with it.
package order

import (
	"context"
	"time"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/id"
	"protheo/internal/core/types"
)

// Status tracks an order through the production pipeline.
type Status string

const (
	StatusPending      Status = "Pending"
	StatusInProduction Status = "InProduction"
	StatusFinished     Status = "Finished"
	StatusDelivered    Status = "Delivered"
)

// Valid reports whether the status is a known pipeline stage.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProduction, StatusFinished, StatusDelivered:
		return true
	}
	return false
}

// Order represents one service order.
type Order struct {
	entity.Base

	// DentistName references the client catalog by display name; the link
	// is a stored snapshot and survives client renames or deletions
	DentistName string `db:"dentist_name" json:"dentistName"`
	PatientName string `db:"patient_name" json:"patientName"`

	// ServiceType references the procedure catalog by display name and is
	// used to prefill UnitValue when the operator leaves it at zero
	ServiceType string `db:"service_type" json:"serviceType"`
	Material    string `db:"material" json:"material"`

	Quantity int `db:"quantity" json:"quantity"`

	// UnitValue is copied from the catalog at write time; later catalog
	// price edits never reprice this order
	UnitValue types.Money `db:"unit_value" json:"unitValue"`

	// DiscountValue is the absolute discount, derived at write time
	DiscountValue types.Money `db:"discount_value" json:"discountValue"`
	TotalValue    types.Money `db:"total_value" json:"totalValue"`

	Status Status `db:"status" json:"status"`

	EntryDate time.Time  `db:"entry_date" json:"entryDate"`
	DueDate   time.Time  `db:"due_date" json:"dueDate"`
	Delivered *time.Time `db:"delivered_at" json:"deliveredAt,omitempty"`

	// PaymentMethodID is a weak reference; a dangling id prices as "no
	// method discount" and the stored value is kept
	PaymentMethodID *id.ID `db:"payment_method_id" json:"paymentMethodId,omitempty"`

	Notes *string `db:"notes" json:"notes,omitempty"`
}

// New creates an Order with generated ID, pending by default.
func New(dentistName, patientName string) *Order {
	return &Order{
		Base:        entity.NewBase(),
		DentistName: dentistName,
		PatientName: patientName,
		Quantity:    1,
		Status:      StatusPending,
		EntryDate:   time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if o.DentistName == "" {
		return apperror.NewValidation("dentist is required").
			WithDetail("field", "dentistName")
	}

	if o.ServiceType == "" {
		return apperror.NewValidation("service type is required").
			WithDetail("field", "serviceType")
	}

	if o.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").
			WithDetail("field", "quantity")
	}

	if o.UnitValue.IsNegative() {
		return apperror.NewValidation("unit value cannot be negative").
			WithDetail("field", "unitValue")
	}

	if o.Status == "" {
		o.Status = StatusPending
	}
	if !o.Status.Valid() {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}

	if o.EntryDate.IsZero() {
		o.EntryDate = time.Now().UTC()
	}

	return nil
}
