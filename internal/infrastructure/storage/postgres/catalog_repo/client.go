package catalog_repo

import (
	"protheo/internal/domain/catalogs/client"
	"protheo/internal/infrastructure/storage/postgres"
)

const clientTable = "cat_clients"

// ClientRepo implements client.Repository.
type ClientRepo struct {
	*postgres.Repo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(txm *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		Repo: postgres.NewRepo(txm, postgres.RepoConfig[*client.Client]{
			Table:   clientTable,
			Columns: postgres.ExtractDBColumns[client.Client](),
			OrderBy: "name ASC",
			New:     func() *client.Client { return &client.Client{} },
		}),
	}
}
