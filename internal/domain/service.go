package domain

import (
	"context"

	"protheo/internal/core/apperror"
	"protheo/internal/core/entity"
	"protheo/internal/core/id"
	"protheo/pkg/logger"
)

// CrudService provides shared business logic for entity CRUD.
// Validation runs locally before any store call; a failed store call is
// surfaced as a persistence error and leaves in-memory state untouched.
type CrudService[T entity.Validatable] struct {
	repo  CrudRepository[T]
	hooks *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// CrudServiceConfig configures the generic service.
type CrudServiceConfig[T entity.Validatable] struct {
	Repo       CrudRepository[T]
	EntityName string
}

// NewCrudService creates a new generic CRUD service.
func NewCrudService[T entity.Validatable](cfg CrudServiceConfig[T]) *CrudService[T] {
	return &CrudService[T]{
		repo:       cfg.Repo,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CrudService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the configured entity name.
func (s *CrudService[T]) EntityName() string {
	return s.entityName
}

func (s *CrudService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CrudService[T]) normalizeStoreErr(err error, idOrCode any) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, idOrCode)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewPersistence(err).WithDetail("entity", s.entityName)
}

// Create validates and inserts a new entity.
func (s *CrudService[T]) Create(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeCreate, e); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return s.normalizeStoreErr(err, nil)
	}

	if err := s.hooks.Run(ctx, AfterCreate, e); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// GetByID retrieves entity by ID.
func (s *CrudService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	e, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return e, s.normalizeStoreErr(err, entityID.String())
	}
	return e, nil
}

// Update validates and overwrites an existing entity.
func (s *CrudService[T]) Update(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeUpdate, e); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return s.normalizeStoreErr(err, nil)
	}

	if err := s.hooks.Run(ctx, AfterUpdate, e); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// Delete removes the entity permanently.
func (s *CrudService[T]) Delete(ctx context.Context, entityID id.ID) error {
	e, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return s.normalizeStoreErr(err, entityID.String())
	}

	if err := s.hooks.Run(ctx, BeforeDelete, e); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, entityID); err != nil {
		return s.normalizeStoreErr(err, entityID.String())
	}

	if err := s.hooks.Run(ctx, AfterDelete, e); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// List retrieves the full entity snapshot in canonical order.
func (s *CrudService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.normalizeStoreErr(err, nil)
	}
	return items, nil
}
