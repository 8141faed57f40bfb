// Package storage opens the client's local SQLite database and applies the
// embedded migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/avoronovs/partyplan/internal/client/migrations"
	"github.com/avoronovs/partyplan/internal/client/repositories/metadata"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn, migrates
// it, and returns the handle plus the metadata repository bound to it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, metadata.Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, metadata.NewSQLiteRepository(db), nil
}
