package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/infrastructure/storage/postgres"
)

const paymentMethodTable = "cat_payment_methods"

// PaymentMethodRepo implements paymentmethod.Repository.
type PaymentMethodRepo struct {
	*postgres.Repo[*paymentmethod.PaymentMethod]
}

// NewPaymentMethodRepo creates a new payment method repository.
func NewPaymentMethodRepo(txm *postgres.TxManager) *PaymentMethodRepo {
	return &PaymentMethodRepo{
		Repo: postgres.NewRepo(txm, postgres.RepoConfig[*paymentmethod.PaymentMethod]{
			Table:   paymentMethodTable,
			Columns: postgres.ExtractDBColumns[paymentmethod.PaymentMethod](),
			OrderBy: "name ASC",
			New:     func() *paymentmethod.PaymentMethod { return &paymentmethod.PaymentMethod{} },
		}),
	}
}

// GetByName retrieves a method by exact name.
func (r *PaymentMethodRepo) GetByName(ctx context.Context, name string) (*paymentmethod.PaymentMethod, error) {
	return r.FindOne(ctx, r.BaseSelect().
		Where(squirrel.Eq{"name": name}).
		Limit(1))
}
