// Package transaction provides the financial ledger: income and expense
// entries, paid or still pending.
package transaction

import (
	"context"
	"time"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/id"
	"protheo/internal/core/types"
)

// Type splits the ledger into money in and money out.
type Type string

const (
	TypeIncome  Type = "Income"
	TypeExpense Type = "Expense"
)

// Valid reports whether the type is known.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Status marks whether the entry has settled.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
)

// Valid reports whether the status is known.
func (s Status) Valid() bool {
	return s == StatusPaid || s == StatusPending
}

// Transaction represents one ledger entry.
type Transaction struct {
	entity.Base

	Type        Type        `db:"type" json:"type"`
	Description string      `db:"description" json:"description"`
	Category    *string     `db:"category" json:"category,omitempty"`
	Amount      types.Money `db:"amount" json:"amount"`
	Date        time.Time   `db:"date" json:"date"`
	Status      Status      `db:"status" json:"status"`

	// OrderID links the entry to the order it settles, when there is one
	OrderID *id.ID `db:"order_id" json:"orderId,omitempty"`

	// PaymentMethodID records how the entry was settled; informational only
	PaymentMethodID *id.ID `db:"payment_method_id" json:"paymentMethodId,omitempty"`
}

// New creates a Transaction with generated ID, dated now.
func New(typ Type, description string, amount types.Money) *Transaction {
	return &Transaction{
		Base:        entity.NewBase(),
		Type:        typ,
		Description: description,
		Amount:      amount,
		Date:        time.Now().UTC(),
		Status:      StatusPending,
	}
}

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if t.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}

	if !t.Type.Valid() {
		return apperror.NewValidation("invalid transaction type").
			WithDetail("field", "type").
			WithDetail("value", string(t.Type))
	}

	if t.Status == "" {
		t.Status = StatusPending
	}
	if !t.Status.Valid() {
		return apperror.NewValidation("invalid transaction status").
			WithDetail("field", "status").
			WithDetail("value", string(t.Status))
	}

	if !t.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}

	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}

	return nil
}
