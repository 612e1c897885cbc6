package invoice

import (
	"context"
	"fmt"

	"protheo/internal/domain"
	"protheo/internal/domain/records"
	"protheo/pkg/numerator"
)

// Service provides business logic for invoices.
type Service struct {
	*domain.CrudService[*Invoice]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Invoice service.
func NewService(repo Repository, num *numerator.Service) *Service {
	base := domain.NewCrudService(domain.CrudServiceConfig[*Invoice]{
		Repo:       repo,
		EntityName: "invoice",
	})

	svc := &Service{
		CrudService: base,
		repo:        repo,
		numerator:   num,
	}

	base.Hooks().OnBeforeCreate(svc.assignNumber)

	return svc
}

func (s *Service) assignNumber(ctx context.Context, i *Invoice) error {
	if i.Number != "" {
		return nil
	}
	number, err := s.numerator.Next(ctx, numerator.DefaultConfig("FAT"), i.IssueDate)
	if err != nil {
		return fmt.Errorf("generate invoice number: %w", err)
	}
	i.Number = number
	return nil
}

// ListFilter holds the invoice list view filter dimensions.
type ListFilter struct {
	Search string
	Status Status
}

// Search returns invoices matching the filter, preserving store order.
func (s *Service) Search(ctx context.Context, f ListFilter) ([]*Invoice, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return records.Filter(all,
		records.TextPredicate(f.Search, func(i *Invoice) []string {
			return []string{i.Number, i.ClientName}
		}),
		records.Equals(string(f.Status), func(i *Invoice) string { return string(i.Status) }),
	), nil
}

// MarkPaid sets the invoice status to paid.
func (s *Service) MarkPaid(ctx context.Context, i *Invoice) error {
	i.Status = StatusPaid
	return s.Update(ctx, i)
}
