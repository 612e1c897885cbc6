package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/id"
	"protheo/internal/domain"
	"protheo/internal/infrastructure/http/v1/dto"
)

// CrudHandler provides generic HTTP handlers for entity CRUD. Entity
// handlers embed it and shadow List when the entity supports filtering.
type CrudHandler[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service *domain.CrudService[T]

	mapCreate func(req CreateDTO) T
	mapUpdate func(req UpdateDTO, existing T) T
}

// CrudHandlerConfig configures the generic handler.
type CrudHandlerConfig[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	Service   *domain.CrudService[T]
	MapCreate func(req CreateDTO) T
	MapUpdate func(req UpdateDTO, existing T) T
}

// NewCrudHandler creates a new generic CRUD handler.
func NewCrudHandler[T entity.Validatable, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg CrudHandlerConfig[T, CreateDTO, UpdateDTO],
) *CrudHandler[T, CreateDTO, UpdateDTO] {
	return &CrudHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler: base,
		service:     cfg.Service,
		mapCreate:   cfg.MapCreate,
		mapUpdate:   cfg.MapUpdate,
	}
}

// Service exposes the underlying CRUD service.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Service() *domain.CrudService[T] {
	return h.service
}

// List handles GET /{entity} - full snapshot in canonical order.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Items: items, Count: len(items)})
}

// Get handles GET /{entity}/:id - single entity.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

// Create handles POST /{entity} - create new entity.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	e := h.mapCreate(req)
	if err := h.service.Create(c.Request.Context(), e); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

// Update handles PUT /{entity}/:id - overwrite existing entity.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdate(req, existing)
	if err := h.service.Update(c.Request.Context(), updated); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /{entity}/:id - permanent removal.
func (h *CrudHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
