package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
)

// RepoConfig configures a generic table-backed repository.
type RepoConfig[T any] struct {
	// Table is the table name
	Table string

	// Columns are the selectable columns, usually from ExtractDBColumns
	Columns []string

	// OrderBy is the canonical snapshot order (e.g. "entry_date DESC")
	OrderBy string

	// New allocates an empty entity for scanning
	New func() T
}

// Repo provides generic CRUD over one table. Rows are written whole and
// deleted physically; the last write wins.
type Repo[T any] struct {
	cfg RepoConfig[T]
	txm *TxManager
}

// NewRepo creates a generic repository.
func NewRepo[T any](txm *TxManager, cfg RepoConfig[T]) *Repo[T] {
	return &Repo[T]{cfg: cfg, txm: txm}
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *Repo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier returns the querier for the current context.
func (r *Repo[T]) Querier(ctx context.Context) Querier {
	return r.txm.GetQuerier(ctx)
}

// Table returns the configured table name.
func (r *Repo[T]) Table() string {
	return r.cfg.Table
}

// BaseSelect returns a SELECT over all configured columns.
func (r *Repo[T]) BaseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.cfg.Columns...).
		From(r.cfg.Table)
}

// Create inserts a new entity using its "db" tags.
func (r *Repo[T]) Create(ctx context.Context, entity T) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filteredData := make(map[string]any, len(r.cfg.Columns))
	for _, col := range r.cfg.Columns {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.Builder().
		Insert(r.cfg.Table).
		SetMap(filteredData).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return r.mapError(err, "insert")
	}

	return nil
}

// GetByID retrieves an entity by ID.
func (r *Repo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	entity := r.cfg.New()

	sql, args, err := r.BaseSelect().
		Where(squirrel.Eq{"id": entityID}).
		Limit(1).
		ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.cfg.Table, entityID.String())
		}
		return entity, fmt.Errorf("get by id: %w", err)
	}

	return entity, nil
}

// Update overwrites an existing entity unconditionally.
func (r *Repo[T]) Update(ctx context.Context, entity T) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("entity has no 'id' field with db tag")
	}

	filteredData := make(map[string]any, len(r.cfg.Columns))
	for _, col := range r.cfg.Columns {
		if col == "id" || col == "created_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.Builder().
		Update(r.cfg.Table).
		SetMap(filteredData).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return r.mapError(err, "update")
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.cfg.Table, fmt.Sprint(entityID))
	}

	return nil
}

// Delete performs physical removal from the database.
func (r *Repo[T]) Delete(ctx context.Context, entityID id.ID) error {
	sql, args, err := r.Builder().
		Delete(r.cfg.Table).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return r.mapError(err, "delete")
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.cfg.Table, entityID.String())
	}

	return nil
}

// List retrieves the full snapshot in canonical order.
func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	q := r.BaseSelect()
	if r.cfg.OrderBy != "" {
		q = q.OrderBy(r.cfg.OrderBy)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]T, 0)
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.cfg.Table, err)
	}

	return items, nil
}

// FindOne executes a SELECT query and returns a single entity.
func (r *Repo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder) (T, error) {
	entity := r.cfg.New()

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.cfg.Table, "matching query")
		}
		return entity, fmt.Errorf("find one: %w", err)
	}

	return entity, nil
}

// ExistsWhere checks whether any row matches the condition.
func (r *Repo[T]) ExistsWhere(ctx context.Context, cond squirrel.Sqlizer) (bool, error) {
	sql, args, err := r.Builder().
		Select("1").
		From(r.cfg.Table).
		Where(cond).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}

	return true, nil
}

// mapError translates PostgreSQL constraint violations into app errors.
func (r *Repo[T]) mapError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.NewDuplicate(r.cfg.Table, "constraint", pgErr.ConstraintName).
				WithCause(err)
		case "23503":
			return apperror.NewConflict("record is referenced by other records").
				WithDetail("entity", r.cfg.Table).
				WithCause(err)
		}
	}
	return fmt.Errorf("%s %s: %w", op, r.cfg.Table, err)
}
