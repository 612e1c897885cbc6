package dto

import (
	"time"

	"protheo/internal/core/entity"
	"protheo/internal/core/types"
	"protheo/internal/domain/documents/invoice"
)

// CreateInvoiceRequest for issuing an invoice. Number may be left empty
// to have one generated.
type CreateInvoiceRequest struct {
	Number     string         `json:"number"`
	ClientName string         `json:"clientName" binding:"required"`
	Amount     types.Money    `json:"amount"`
	IssueDate  *time.Time     `json:"issueDate"`
	DueDate    time.Time      `json:"dueDate"`
	Status     invoice.Status `json:"status"`
	Notes      *string        `json:"notes"`
}

// ToEntity converts the request to a domain entity.
func (r CreateInvoiceRequest) ToEntity() *invoice.Invoice {
	i := &invoice.Invoice{
		Base:       entity.NewBase(),
		Number:     r.Number,
		ClientName: r.ClientName,
		Amount:     r.Amount,
		DueDate:    r.DueDate,
		Status:     r.Status,
		Notes:      r.Notes,
	}
	if r.IssueDate != nil {
		i.IssueDate = *r.IssueDate
	}
	return i
}

// UpdateInvoiceRequest for updating an invoice.
type UpdateInvoiceRequest struct {
	ClientName string         `json:"clientName" binding:"required"`
	Amount     types.Money    `json:"amount"`
	IssueDate  time.Time      `json:"issueDate" binding:"required"`
	DueDate    time.Time      `json:"dueDate"`
	Status     invoice.Status `json:"status"`
	Notes      *string        `json:"notes"`
}

// ApplyTo applies the request to an existing entity. The number is
// immutable once issued.
func (r UpdateInvoiceRequest) ApplyTo(i *invoice.Invoice) {
	i.ClientName = r.ClientName
	i.Amount = r.Amount
	i.IssueDate = r.IssueDate
	i.DueDate = r.DueDate
	i.Status = r.Status
	i.Notes = r.Notes
	i.Touch()
}
