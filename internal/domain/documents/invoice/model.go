// Package invoice provides issued invoices. The client name is a stored
// snapshot taken when the invoice is issued.
package invoice

import (
	"context"
	"time"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/types"
)

// Status marks whether the invoice has been paid.
type Status string

const (
	StatusPaid      Status = "Paid"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// Valid reports whether the status is known.
func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Invoice represents one issued invoice.
type Invoice struct {
	entity.Base

	// Number is the sequential invoice number (e.g. FAT-2026-00001),
	// generated at creation when empty
	Number string `db:"number" json:"number"`

	ClientName string      `db:"client_name" json:"clientName"`
	Amount     types.Money `db:"amount" json:"amount"`

	IssueDate time.Time `db:"issue_date" json:"issueDate"`
	DueDate   time.Time `db:"due_date" json:"dueDate"`

	Status Status `db:"status" json:"status"`

	Notes *string `db:"notes" json:"notes,omitempty"`
}

// New creates an Invoice with generated ID, issued now, pending.
func New(clientName string, amount types.Money) *Invoice {
	return &Invoice{
		Base:       entity.NewBase(),
		ClientName: clientName,
		Amount:     amount,
		IssueDate:  time.Now().UTC(),
		Status:     StatusPending,
	}
}

// Overdue reports whether the invoice is pending past its due date.
func (i *Invoice) Overdue(now time.Time) bool {
	return i.Status == StatusPending && !i.DueDate.IsZero() && i.DueDate.Before(now)
}

// Validate implements entity.Validatable.
func (i *Invoice) Validate(ctx context.Context) error {
	if i.ClientName == "" {
		return apperror.NewValidation("client name is required").
			WithDetail("field", "clientName")
	}

	if !i.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}

	if i.Status == "" {
		i.Status = StatusPending
	}
	if !i.Status.Valid() {
		return apperror.NewValidation("invalid invoice status").
			WithDetail("field", "status").
			WithDetail("value", string(i.Status))
	}

	if i.IssueDate.IsZero() {
		i.IssueDate = time.Now().UTC()
	}

	return nil
}
