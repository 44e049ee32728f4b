package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/notesstudio/notes-go/internal/repository/migrations"
)

// RunMigrations applies the embedded schema migrations for the given driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	var dir, dialect string
	switch driver {
	case "mysql":
		dir, dialect = "mysql", "mysql"
	case "sqlite":
		dir, dialect = "sqlite", "sqlite3"
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, dir)
}
