package task

import (
	"context"

	"protheo/internal/core/id"
	"protheo/internal/domain"
	"protheo/internal/domain/records"
)

// Service provides business logic for the task board.
type Service struct {
	*domain.CrudService[*Task]
	repo Repository
}

// NewService creates a new Task service.
func NewService(repo Repository) *Service {
	return &Service{
		CrudService: domain.NewCrudService(domain.CrudServiceConfig[*Task]{
			Repo:       repo,
			EntityName: "task",
		}),
		repo: repo,
	}
}

// Less orders the board: open tasks before completed ones, earlier due
// dates first within each group. Ties keep their stored order.
func Less(a, b *Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	return a.DueDate.Before(b.DueDate)
}

// Board returns all tasks in board order.
func (s *Service) Board(ctx context.Context) ([]*Task, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return records.SortStable(all, Less), nil
}

// ToggleCompleted flips the completion flag of one task.
func (s *Service) ToggleCompleted(ctx context.Context, taskID id.ID) (*Task, error) {
	t, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	t.Completed = !t.Completed
	if err := s.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
