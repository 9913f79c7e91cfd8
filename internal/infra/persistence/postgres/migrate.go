package postgres

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"

	"refill/internal/errors"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// RunMigrations applies the embedded schema migrations. The schema also owns
// the add_bottles procedure and the uniqueness constraints that back the
// registration conflict checks.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
