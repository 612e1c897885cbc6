package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
	"protheo/internal/domain/documents/task"
	"protheo/internal/infrastructure/http/v1/dto"
)

// TaskHandler handles the production task board endpoints.
type TaskHandler struct {
	*CrudHandler[*task.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]
	service *task.Service
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(base *BaseHandler, service *task.Service) *TaskHandler {
	return &TaskHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[
			*task.Task,
			dto.CreateTaskRequest,
			dto.UpdateTaskRequest,
		]{
			Service: service.CrudService,
			MapCreate: func(req dto.CreateTaskRequest) *task.Task {
				return req.ToEntity()
			},
			MapUpdate: func(req dto.UpdateTaskRequest, existing *task.Task) *task.Task {
				req.ApplyTo(existing)
				return existing
			},
		}),
		service: service,
	}
}

// List handles GET /tasks - the board view, open tasks first.
func (h *TaskHandler) List(c *gin.Context) {
	items, err := h.service.Board(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, Count: len(items)})
}

// Toggle handles POST /tasks/:id/toggle - flip the completed flag.
func (h *TaskHandler) Toggle(c *gin.Context) {
	taskID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	t, err := h.service.ToggleCompleted(c.Request.Context(), taskID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}
