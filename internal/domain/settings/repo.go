package settings

import (
	"context"
)

// Repository defines the interface for the settings singleton.
type Repository interface {
	// Get retrieves the stored settings, or a not-found error when
	// nothing has been saved yet.
	Get(ctx context.Context) (*CompanySettings, error)

	// Upsert inserts the row on first save and overwrites it afterwards.
	Upsert(ctx context.Context, s *CompanySettings) error
}
