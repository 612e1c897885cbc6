package procedure

import (
	"context"

	"protheo/internal/domain"
)

// Repository defines the interface for Procedure persistence.
// List returns the catalog ordered by display_order ascending.
type Repository interface {
	domain.CrudRepository[*Procedure]

	// GetByCode retrieves a procedure by its unique code.
	GetByCode(ctx context.Context, code string) (*Procedure, error)

	// ExistsByCode checks if a procedure with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
