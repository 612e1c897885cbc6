package order

import (
	"protheo/internal/domain"
)

// Repository defines the interface for Order persistence.
// List returns orders by entry date descending, newest first.
type Repository interface {
	domain.CrudRepository[*Order]
}
