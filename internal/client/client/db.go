// Package client wires up the local database: it opens the SQLite file,
// applies embedded migrations and hands out repositories.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/daybook/internal/client/migrations"
	"github.com/dmitrijs2005/daybook/internal/client/repositories/entries"
)

// Repositories bundles the data-access objects backed by the local
// database.
type Repositories struct {
	Entries entries.Repository
	DB      *sql.DB
}

// RunMigrations applies all embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn,
// migrates it to the current schema and returns the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Entries: entries.NewSQLiteRepository(db),
		DB:      db,
	}, nil
}
