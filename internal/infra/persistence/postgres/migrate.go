package postgres

import (
	"context"
	"database/sql"

	"recipebox/internal/errors"
	"recipebox/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies every embedded migration that has not run yet.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}
