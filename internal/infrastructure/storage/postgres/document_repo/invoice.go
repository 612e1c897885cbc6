package document_repo

import (
	"protheo/internal/domain/documents/invoice"
	"protheo/internal/infrastructure/storage/postgres"
)

const invoiceTable = "doc_invoices"

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	*postgres.Repo[*invoice.Invoice]
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		Repo: postgres.NewRepo(txm, postgres.RepoConfig[*invoice.Invoice]{
			Table:   invoiceTable,
			Columns: postgres.ExtractDBColumns[invoice.Invoice](),
			OrderBy: "issue_date DESC, number DESC",
			New:     func() *invoice.Invoice { return &invoice.Invoice{} },
		}),
	}
}
