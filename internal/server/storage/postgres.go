// Package storage opens the server's Postgres connection, applies embedded
// migrations, and hands out the concrete repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avoronovs/partyplan/internal/server/migrations"
	"github.com/avoronovs/partyplan/internal/server/repositories/users"
	"github.com/avoronovs/partyplan/internal/server/repositories/votes"
)

type Postgres struct {
	db    *sql.DB
	users users.Repository
	votes votes.Repository
}

func (m *Postgres) Conn() *sql.DB { return m.db }

func (m *Postgres) Users() users.Repository { return m.users }

func (m *Postgres) Votes() votes.Repository { return m.votes }

func (m *Postgres) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func (m *Postgres) Close() error { return m.db.Close() }

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := &Postgres{
		db:    db,
		users: users.NewPostgresRepository(db),
		votes: votes.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
