package dto

import (
	"time"

	"protheo/internal/core/entity"
	"protheo/internal/core/id"
	"protheo/internal/domain/documents/task"
)

// CreateTaskRequest for creating a board task.
type CreateTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description *string       `json:"description"`
	Assignee    *string       `json:"assignee"`
	DueDate     time.Time     `json:"dueDate" binding:"required"`
	Priority    task.Priority `json:"priority"`
	OrderID     *id.ID        `json:"orderId"`
}

// ToEntity converts the request to a domain entity.
func (r CreateTaskRequest) ToEntity() *task.Task {
	return &task.Task{
		Base:        entity.NewBase(),
		Title:       r.Title,
		Description: r.Description,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		OrderID:     r.OrderID,
	}
}

// UpdateTaskRequest for updating a board task.
type UpdateTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description *string       `json:"description"`
	Assignee    *string       `json:"assignee"`
	DueDate     time.Time     `json:"dueDate" binding:"required"`
	Priority    task.Priority `json:"priority"`
	Completed   bool          `json:"completed"`
	OrderID     *id.ID        `json:"orderId"`
}

// ApplyTo applies the request to an existing entity.
func (r UpdateTaskRequest) ApplyTo(t *task.Task) {
	t.Title = r.Title
	t.Description = r.Description
	t.Assignee = r.Assignee
	t.DueDate = r.DueDate
	t.Priority = r.Priority
	t.Completed = r.Completed
	t.OrderID = r.OrderID
	t.Touch()
}
