package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/dbx"
	"github.com/avoronovs/partyplan/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, vote *models.Vote) (*models.Vote, error) {

	query :=
		`INSERT INTO votes (option, ip_address)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, vote.Option, vote.IPAddress).Scan(&vote.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vote, nil
}

func (r *PostgresRepository) CountByIP(ctx context.Context, ipAddress string) (int, error) {
	query :=
		`SELECT COUNT(*) FROM votes
		 WHERE ip_address = $1
		 `

	var count int
	if err := r.db.QueryRowContext(ctx, query, ipAddress).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Results(ctx context.Context) ([]models.PollResult, error) {
	query :=
		`SELECT option, COUNT(*) AS count FROM votes
		 GROUP BY option
		 ORDER BY count DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	results := make([]models.PollResult, 0)
	for rows.Next() {
		var res models.PollResult
		if err := rows.Scan(&res.Option, &res.Count); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return results, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) (*models.Vote, error) {
	query :=
		`DELETE FROM votes
		 WHERE id = $1
		 RETURNING id, option, ip_address
		 `

	vote := &models.Vote{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&vote.ID, &vote.Option, &vote.IPAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vote, nil
}
