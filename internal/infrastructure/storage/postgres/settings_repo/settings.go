// Package settings_repo provides the PostgreSQL implementation of the
// company settings singleton.
package settings_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"

	"protheo/internal/core/apperror"
	"protheo/internal/domain/settings"
	"protheo/internal/infrastructure/storage/postgres"
)

const settingsTable = "company_settings"

// SettingsRepo implements settings.Repository over a single-row table.
type SettingsRepo struct {
	txm  *postgres.TxManager
	cols []string
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(txm *postgres.TxManager) *SettingsRepo {
	return &SettingsRepo{
		txm:  txm,
		cols: postgres.ExtractDBColumns[settings.CompanySettings](),
	}
}

// Get retrieves the stored settings row.
func (r *SettingsRepo) Get(ctx context.Context) (*settings.CompanySettings, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s LIMIT 1",
		strings.Join(r.cols, ", "), settingsTable)

	out := &settings.CompanySettings{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), out, sql); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("settings", nil)
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return out, nil
}

// Upsert inserts the row on first save and overwrites it afterwards.
func (r *SettingsRepo) Upsert(ctx context.Context, s *settings.CompanySettings) error {
	data := postgres.StructToMap(s)

	cols := make([]string, 0, len(r.cols))
	placeholders := make([]string, 0, len(r.cols))
	updates := make([]string, 0, len(r.cols))
	args := make([]any, 0, len(r.cols))

	for _, col := range r.cols {
		val, ok := data[col]
		if !ok {
			continue
		}
		args = append(args, val)
		cols = append(cols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		if col != "id" && col != "created_at" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s",
		settingsTable,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}
