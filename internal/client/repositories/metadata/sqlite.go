// Package metadata is the client's local key/value store. It holds the
// saved session (the bearer token and the identity JSON) between runs.
package metadata

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronovs/partyplan/internal/dbx"
)

const upsertQuery = `
	INSERT INTO metadata (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the stored value for key, or (nil, nil) when the key is
// absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, upsertQuery, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// SetAll upserts every pair in a single transaction, so a saved session is
// never left with a token but no identity.
func (r *SQLiteRepository) SetAll(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range values {
			if _, err := tx.ExecContext(ctx, upsertQuery, key, value); err != nil {
				return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
