package procedure

import (
	"context"
	"fmt"
	"time"

	"protheo/internal/core/apperror"
	"protheo/internal/domain"
	"protheo/pkg/numerator"
)

// Service provides business logic for the procedure catalog.
// Uses composition with domain.CrudService for common CRUD operations.
type Service struct {
	*domain.CrudService[*Procedure]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Procedure service.
func NewService(repo Repository, num *numerator.Service) *Service {
	base := domain.NewCrudService(domain.CrudServiceConfig[*Procedure]{
		Repo:       repo,
		EntityName: "procedure",
	})

	svc := &Service{
		CrudService: base,
		repo:        repo,
		numerator:   num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks.
func (s *Service) prepareForCreate(ctx context.Context, p *Procedure) error {
	if p.Code == "" {
		code, err := s.numerator.Next(ctx, numerator.DefaultConfig("PRO"), time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
		return nil
	}

	exists, err := s.repo.ExistsByCode(ctx, p.Code)
	if err != nil {
		return apperror.NewPersistence(err).WithDetail("entity", "procedure")
	}
	if exists {
		return apperror.NewDuplicate("procedure", "code", p.Code)
	}
	return nil
}

// GetByCode retrieves a procedure by code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Procedure, error) {
	return s.repo.GetByCode(ctx, code)
}
