package dto

import (
	"time"

	"protheo/internal/core/entity"
	"protheo/internal/core/id"
	"protheo/internal/core/types"
	"protheo/internal/domain/documents/transaction"
)

// CreateTransactionRequest for creating a ledger entry.
type CreateTransactionRequest struct {
	Type            transaction.Type   `json:"type" binding:"required"`
	Description     string             `json:"description" binding:"required"`
	Category        *string            `json:"category"`
	Amount          types.Money        `json:"amount"`
	Date            *time.Time         `json:"date"`
	Status          transaction.Status `json:"status"`
	OrderID         *id.ID             `json:"orderId"`
	PaymentMethodID *id.ID             `json:"paymentMethodId"`
}

// ToEntity converts the request to a domain entity.
func (r CreateTransactionRequest) ToEntity() *transaction.Transaction {
	t := &transaction.Transaction{
		Base:            entity.NewBase(),
		Type:            r.Type,
		Description:     r.Description,
		Category:        r.Category,
		Amount:          r.Amount,
		Status:          r.Status,
		OrderID:         r.OrderID,
		PaymentMethodID: r.PaymentMethodID,
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	return t
}

// UpdateTransactionRequest for updating a ledger entry.
type UpdateTransactionRequest struct {
	Type            transaction.Type   `json:"type" binding:"required"`
	Description     string             `json:"description" binding:"required"`
	Category        *string            `json:"category"`
	Amount          types.Money        `json:"amount"`
	Date            time.Time          `json:"date" binding:"required"`
	Status          transaction.Status `json:"status"`
	OrderID         *id.ID             `json:"orderId"`
	PaymentMethodID *id.ID             `json:"paymentMethodId"`
}

// ApplyTo applies the request to an existing entity.
func (r UpdateTransactionRequest) ApplyTo(t *transaction.Transaction) {
	t.Type = r.Type
	t.Description = r.Description
	t.Category = r.Category
	t.Amount = r.Amount
	t.Date = r.Date
	t.Status = r.Status
	t.OrderID = r.OrderID
	t.PaymentMethodID = r.PaymentMethodID
	t.Touch()
}
