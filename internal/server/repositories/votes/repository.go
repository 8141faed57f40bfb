package votes

import (
	"context"

	"github.com/avoronovs/partyplan/internal/server/models"
)

type Repository interface {
	// Create persists a new vote and fills in the server-assigned id.
	Create(ctx context.Context, vote *models.Vote) (*models.Vote, error)

	// CountByIP reports how many votes the given address has already cast.
	CountByIP(ctx context.Context, ipAddress string) (int, error)

	// Results returns per-option tallies, highest count first.
	Results(ctx context.Context) ([]models.PollResult, error)

	// Delete removes a vote by id, returning the deleted record or
	// common.ErrorNotFound.
	Delete(ctx context.Context, id int) (*models.Vote, error)
}
