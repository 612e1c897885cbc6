package paymentmethod

import (
	"context"

	"protheo/internal/domain"
	"protheo/internal/domain/records"
)

// Service provides business logic for the payment method catalog.
type Service struct {
	*domain.CrudService[*PaymentMethod]
	repo Repository
}

// NewService creates a new PaymentMethod service.
func NewService(repo Repository) *Service {
	return &Service{
		CrudService: domain.NewCrudService(domain.CrudServiceConfig[*PaymentMethod]{
			Repo:       repo,
			EntityName: "payment method",
		}),
		repo: repo,
	}
}

// GetByName retrieves a method by exact name.
func (s *Service) GetByName(ctx context.Context, name string) (*PaymentMethod, error) {
	return s.repo.GetByName(ctx, name)
}

// ListActive returns only methods currently offered on new orders.
func (s *Service) ListActive(ctx context.Context) ([]*PaymentMethod, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return records.Filter(all, func(m *PaymentMethod) bool { return m.Active }), nil
}
