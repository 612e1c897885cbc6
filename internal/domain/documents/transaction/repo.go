package transaction

import (
	"protheo/internal/domain"
)

// Repository defines the interface for Transaction persistence.
// List returns entries by date descending, newest first.
type Repository interface {
	domain.CrudRepository[*Transaction]
}
