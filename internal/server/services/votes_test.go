package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/server/models"
)

type fakeVotesRepo struct {
	votes []*models.Vote

	countErr  error
	createErr error
}

func (f *fakeVotesRepo) Create(ctx context.Context, v *models.Vote) (*models.Vote, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	v.ID = len(f.votes) + 1
	f.votes = append(f.votes, v)
	return v, nil
}

func (f *fakeVotesRepo) CountByIP(ctx context.Context, ip string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, v := range f.votes {
		if v.IPAddress == ip {
			n++
		}
	}
	return n, nil
}

func (f *fakeVotesRepo) Results(ctx context.Context) ([]models.PollResult, error) {
	counts := map[string]int{}
	for _, v := range f.votes {
		counts[v.Option]++
	}
	out := make([]models.PollResult, 0, len(counts))
	for opt, n := range counts {
		out = append(out, models.PollResult{Option: opt, Count: n})
	}
	return out, nil
}

func (f *fakeVotesRepo) Delete(ctx context.Context, id int) (*models.Vote, error) {
	for i, v := range f.votes {
		if v.ID == id {
			f.votes = append(f.votes[:i], f.votes[i+1:]...)
			return v, nil
		}
	}
	return nil, common.ErrorNotFound
}

func TestCast_Success(t *testing.T) {
	svc := NewVoteService(&fakeVotesRepo{})

	vote, err := svc.Cast(context.Background(), VoteInput{Option: "beach"}, "10.0.0.1")
	if err != nil {
		t.Fatalf("Cast error: %v", err)
	}
	if vote.ID == 0 || vote.Option != "beach" || vote.IPAddress != "10.0.0.1" {
		t.Fatalf("unexpected vote: %+v", vote)
	}
}

func TestCast_DuplicateIP(t *testing.T) {
	repo := &fakeVotesRepo{}
	svc := NewVoteService(repo)

	if _, err := svc.Cast(context.Background(), VoteInput{Option: "beach"}, "10.0.0.1"); err != nil {
		t.Fatalf("first Cast error: %v", err)
	}

	_, err := svc.Cast(context.Background(), VoteInput{Option: "cabin"}, "10.0.0.1")
	if !errors.Is(err, common.ErrDuplicateVote) {
		t.Fatalf("expected common.ErrDuplicateVote, got %v", err)
	}
	if len(repo.votes) != 1 {
		t.Fatalf("duplicate vote must not be recorded, got %d", len(repo.votes))
	}
}

func TestCast_DifferentIPsAllowed(t *testing.T) {
	svc := NewVoteService(&fakeVotesRepo{})

	if _, err := svc.Cast(context.Background(), VoteInput{Option: "beach"}, "10.0.0.1"); err != nil {
		t.Fatalf("Cast error: %v", err)
	}
	if _, err := svc.Cast(context.Background(), VoteInput{Option: "beach"}, "10.0.0.2"); err != nil {
		t.Fatalf("Cast from second address error: %v", err)
	}
}

func TestCast_EmptyOption(t *testing.T) {
	svc := NewVoteService(&fakeVotesRepo{})

	_, err := svc.Cast(context.Background(), VoteInput{}, "10.0.0.1")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewVoteService(&fakeVotesRepo{})

	_, err := svc.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
