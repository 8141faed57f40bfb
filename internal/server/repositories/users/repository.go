package users

import (
	"context"

	"github.com/avoronovs/partyplan/internal/server/models"
)

type Repository interface {
	// Create persists a new user and fills in the server-assigned fields
	// (id, createdat). A duplicate email yields common.ErrEmailExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
