package document_repo

import (
	"protheo/internal/domain/documents/transaction"
	"protheo/internal/infrastructure/storage/postgres"
)

const transactionTable = "doc_transactions"

// TransactionRepo implements transaction.Repository.
type TransactionRepo struct {
	*postgres.Repo[*transaction.Transaction]
}

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(txm *postgres.TxManager) *TransactionRepo {
	return &TransactionRepo{
		Repo: postgres.NewRepo(txm, postgres.RepoConfig[*transaction.Transaction]{
			Table:   transactionTable,
			Columns: postgres.ExtractDBColumns[transaction.Transaction](),
			OrderBy: "date DESC, created_at DESC",
			New:     func() *transaction.Transaction { return &transaction.Transaction{} },
		}),
	}
}
