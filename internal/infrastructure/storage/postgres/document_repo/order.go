// Package document_repo provides PostgreSQL implementations for document
// repositories.
package document_repo

import (
	"protheo/internal/domain/documents/order"
	"protheo/internal/infrastructure/storage/postgres"
)

const orderTable = "doc_orders"

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*postgres.Repo[*order.Order]
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txm *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		Repo: postgres.NewRepo(txm, postgres.RepoConfig[*order.Order]{
			Table:   orderTable,
			Columns: postgres.ExtractDBColumns[order.Order](),
			OrderBy: "entry_date DESC, created_at DESC",
			New:     func() *order.Order { return &order.Order{} },
		}),
	}
}
