package paymentmethod

import (
	"context"

	"protheo/internal/domain"
)

// Repository defines the interface for PaymentMethod persistence.
type Repository interface {
	domain.CrudRepository[*PaymentMethod]

	// GetByName retrieves a method by exact name.
	GetByName(ctx context.Context, name string) (*PaymentMethod, error)
}
