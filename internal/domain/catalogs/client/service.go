package client

import (
	"context"

	"protheo/internal/domain"
	"protheo/internal/domain/records"
)

// Service provides business logic for the client catalog.
type Service struct {
	*domain.CrudService[*Client]
	repo Repository
}

// NewService creates a new Client service.
func NewService(repo Repository) *Service {
	return &Service{
		CrudService: domain.NewCrudService(domain.CrudServiceConfig[*Client]{
			Repo:       repo,
			EntityName: "client",
		}),
		repo: repo,
	}
}

// ListFilter holds the client list view filter dimensions.
type ListFilter struct {
	Search string
	Status Status
}

// Search returns clients matching the filter, preserving store order.
func (s *Service) Search(ctx context.Context, f ListFilter) ([]*Client, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return records.Filter(all,
		records.TextPredicate(f.Search, func(c *Client) []string {
			fields := []string{c.Name, c.Contact}
			if c.Email != nil {
				fields = append(fields, *c.Email)
			}
			if c.Specialty != nil {
				fields = append(fields, *c.Specialty)
			}
			return fields
		}),
		records.Equals(string(f.Status), func(c *Client) string { return string(c.Status) }),
	), nil
}
