package settings

import (
	"context"

	"protheo/internal/core/apperror"
	"protheo/internal/core/types"
)

// Service provides business logic for company settings.
type Service struct {
	repo Repository
}

// NewService creates a new Settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored settings, falling back to defaults when nothing
// has been saved yet.
func (s *Service) Get(ctx context.Context) (*CompanySettings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if apperror.IsNotFound(err) {
			return Default(), nil
		}
		return nil, apperror.NewPersistence(err).WithDetail("entity", "settings")
	}
	return stored, nil
}

// Save validates and upserts the settings. Saving keeps the stored row's
// identity: the incoming value inherits the existing ID when one exists.
func (s *Service) Save(ctx context.Context, in *CompanySettings) (*CompanySettings, error) {
	if err := in.Validate(ctx); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewValidation(err.Error())
	}

	current, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		in.ID = current.ID
		in.CreatedAt = current.CreatedAt
	case apperror.IsNotFound(err):
		// first save creates the row
	default:
		return nil, apperror.NewPersistence(err).WithDetail("entity", "settings")
	}

	in.Touch()
	if err := s.repo.Upsert(ctx, in); err != nil {
		return nil, apperror.NewPersistence(err).WithDetail("entity", "settings")
	}
	return in, nil
}

// GlobalDiscount returns the configured global discount, nil when unset.
func (s *Service) GlobalDiscount(ctx context.Context) (*types.Percent, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return cfg.GlobalDiscount, nil
}
