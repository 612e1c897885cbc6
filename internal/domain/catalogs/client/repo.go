package client

import (
	"protheo/internal/domain"
)

// Repository defines the interface for Client persistence.
// List returns clients ordered by name.
type Repository interface {
	domain.CrudRepository[*Client]
}
