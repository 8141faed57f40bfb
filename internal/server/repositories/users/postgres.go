package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/dbx"
	"github.com/avoronovs/partyplan/internal/server/models"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
// Concurrent signups racing on the same email are serialized by the users
// email index; the loser sees this code.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (firstname, lastname, email, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, createdat, updatedat
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordDigest).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrEmailExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, firstname, lastname, email, password, createdat, updatedat
		 FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.PasswordDigest, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
