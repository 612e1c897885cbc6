package task

import (
	"protheo/internal/domain"
)

// Repository defines the interface for Task persistence.
type Repository interface {
	domain.CrudRepository[*Task]
}
