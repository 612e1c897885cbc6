// Package task provides the production task board.
package task

import (
	"context"
	"time"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/id"
)

// Priority orders tasks by urgency in the board view.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether the priority is known.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents one item on the production board.
type Task struct {
	entity.Base

	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description,omitempty"`
	Assignee    *string `db:"assignee" json:"assignee,omitempty"`

	DueDate   time.Time `db:"due_date" json:"dueDate"`
	Priority  Priority  `db:"priority" json:"priority"`
	Completed bool      `db:"completed" json:"completed"`

	// OrderID links the task to the order it belongs to, when there is one
	OrderID *id.ID `db:"order_id" json:"orderId,omitempty"`
}

// New creates a Task with generated ID, medium priority.
func New(title string, dueDate time.Time) *Task {
	return &Task{
		Base:     entity.NewBase(),
		Title:    title,
		DueDate:  dueDate,
		Priority: PriorityMedium,
	}
}

// Validate implements entity.Validatable.
func (t *Task) Validate(ctx context.Context) error {
	if t.Title == "" {
		return apperror.NewValidation("title is required").
			WithDetail("field", "title")
	}

	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if !t.Priority.Valid() {
		return apperror.NewValidation("invalid task priority").
			WithDetail("field", "priority").
			WithDetail("value", string(t.Priority))
	}

	if t.DueDate.IsZero() {
		return apperror.NewValidation("due date is required").
			WithDetail("field", "dueDate")
	}

	return nil
}
