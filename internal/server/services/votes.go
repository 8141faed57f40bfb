package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/server/models"
	"github.com/avoronovs/partyplan/internal/server/repositories/votes"
)

// VoteInput is the payload accepted by Cast.
type VoteInput struct {
	Option string `json:"option" validate:"required"`
}

// VoteService implements the majority-vote poll: one vote per distinct
// client IP, tallied per option.
type VoteService struct {
	repo     votes.Repository
	validate *validator.Validate
}

func NewVoteService(repo votes.Repository) *VoteService {
	return &VoteService{repo: repo, validate: newValidator()}
}

// Cast records a vote for the given option. A second vote from the same
// address yields common.ErrDuplicateVote. The check is advisory (two
// concurrent first votes from one address can both land); the schema
// intentionally carries no unique index.
func (s *VoteService) Cast(ctx context.Context, in VoteInput, ipAddress string) (*models.Vote, error) {
	if err := checkStruct(s.validate, in); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByIP(ctx, ipAddress)
	if err != nil {
		return nil, fmt.Errorf("vote lookup error: %w", err)
	}
	if count > 0 {
		return nil, common.ErrDuplicateVote
	}

	vote, err := s.repo.Create(ctx, &models.Vote{Option: in.Option, IPAddress: ipAddress})
	if err != nil {
		return nil, fmt.Errorf("error recording vote: %w", err)
	}

	return vote, nil
}

// Results returns per-option tallies, highest count first.
func (s *VoteService) Results(ctx context.Context) ([]models.PollResult, error) {
	results, err := s.repo.Results(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching poll results: %w", err)
	}
	return results, nil
}

// Delete removes a vote by id, returning the deleted record.
func (s *VoteService) Delete(ctx context.Context, id int) (*models.Vote, error) {
	vote, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return vote, nil
}
