package transaction

import (
	"context"
	"time"

	"protheo/internal/domain"
	"protheo/internal/domain/records"
)

// Service provides business logic for the financial ledger.
type Service struct {
	*domain.CrudService[*Transaction]
	repo Repository
}

// NewService creates a new Transaction service.
func NewService(repo Repository) *Service {
	return &Service{
		CrudService: domain.NewCrudService(domain.CrudServiceConfig[*Transaction]{
			Repo:       repo,
			EntityName: "transaction",
		}),
		repo: repo,
	}
}

// ListFilter holds the ledger list view filter dimensions.
type ListFilter struct {
	Search   string
	Type     Type
	Status   Status
	DateFrom *time.Time
	DateTo   *time.Time
}

// Search returns entries matching the filter, preserving store order.
func (s *Service) Search(ctx context.Context, f ListFilter) ([]*Transaction, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return records.Filter(all,
		records.TextPredicate(f.Search, func(t *Transaction) []string {
			fields := []string{t.Description}
			if t.Category != nil {
				fields = append(fields, *t.Category)
			}
			return fields
		}),
		records.Equals(string(f.Type), func(t *Transaction) string { return string(t.Type) }),
		records.Equals(string(f.Status), func(t *Transaction) string { return string(t.Status) }),
		records.DateRangePredicate(f.DateFrom, f.DateTo, func(t *Transaction) time.Time { return t.Date }),
	), nil
}
