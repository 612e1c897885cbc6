// Package catalog_repo provides PostgreSQL implementations for catalog
// repositories.
package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"protheo/internal/domain/catalogs/procedure"
	"protheo/internal/infrastructure/storage/postgres"
)

const procedureTable = "cat_procedures"

// ProcedureRepo implements procedure.Repository.
type ProcedureRepo struct {
	*postgres.Repo[*procedure.Procedure]
}

// NewProcedureRepo creates a new procedure repository.
func NewProcedureRepo(txm *postgres.TxManager) *ProcedureRepo {
	return &ProcedureRepo{
		Repo: postgres.NewRepo(txm, postgres.RepoConfig[*procedure.Procedure]{
			Table:   procedureTable,
			Columns: postgres.ExtractDBColumns[procedure.Procedure](),
			OrderBy: "display_order ASC, name ASC",
			New:     func() *procedure.Procedure { return &procedure.Procedure{} },
		}),
	}
}

// GetByCode retrieves a procedure by its unique code.
func (r *ProcedureRepo) GetByCode(ctx context.Context, code string) (*procedure.Procedure, error) {
	return r.FindOne(ctx, r.BaseSelect().
		Where(squirrel.Eq{"code": code}).
		Limit(1))
}

// ExistsByCode checks if a procedure with the given code exists.
func (r *ProcedureRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.ExistsWhere(ctx, squirrel.Eq{"code": code})
}
