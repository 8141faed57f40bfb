package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Poll prints the current standings, highest count first.
func (a *App) Poll(ctx context.Context) error {
	items, err := a.api.PollResults(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No votes yet.")
		return nil
	}

	for i, item := range items {
		fmt.Printf("%d. %-30s %d\n", i+1, item.Option, item.Count)
	}
	return nil
}

// Vote prompts for an option and casts a ballot.
func (a *App) Vote(ctx context.Context) error {
	option, err := getSimpleText(a.reader, "Enter option to vote for", os.Stdout)
	if err != nil {
		return err
	}

	vote, err := a.api.CastVote(ctx, option)
	if err != nil {
		return err
	}

	fmt.Printf("Vote #%d recorded for %q.\n", vote.ID, vote.Option)
	return nil
}

// Unvote prompts for a vote id and removes it.
func (a *App) Unvote(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Enter vote id to remove", os.Stdout)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("vote id must be an integer: %q", raw)
	}

	deleted, err := a.api.DeleteVote(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Removed vote #%d for %q.\n", deleted.ID, deleted.Option)
	return nil
}
