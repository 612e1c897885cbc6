package invoice

import (
	"protheo/internal/domain"
)

// Repository defines the interface for Invoice persistence.
// List returns invoices by issue date descending, newest first.
type Repository interface {
	domain.CrudRepository[*Invoice]
}
