package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"drawlab/internal/errors"
)

// MigrationRunner handles the draws schema migration
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{version: "1.0.0"}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order. The DDL is
// restricted to the dialect shared by PostgreSQL and SQLite so both
// drivers run the same statements.
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createDrawsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create draws table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create draws indexes")
	}
	return nil
}

func (r *MigrationRunner) createDrawsTable(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS draws (
			id TEXT PRIMARY KEY,
			draw_number BIGINT NOT NULL,
			draw_date TEXT NOT NULL,
			game_type TEXT NOT NULL,
			game_provider TEXT NOT NULL DEFAULT '',
			numbers TEXT NOT NULL,
			UNIQUE (game_type, draw_number)
		)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_draws_game_date ON draws (game_type, draw_date)`,
		`CREATE INDEX IF NOT EXISTS idx_draws_provider ON draws (game_provider)`,
	}
	for _, query := range indexes {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
