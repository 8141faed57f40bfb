package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/server/services"
)

// PollResults returns the current per-option tallies, highest count first.
func (a *API) PollResults(w http.ResponseWriter, r *http.Request) {
	results, err := a.votes.Results(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeData(w, http.StatusOK, map[string]any{
		"items":     results,
		"count":     len(results),
		"timestamp": time.Now().UTC(),
	})
}

// CastVote records a vote for the caller's IP address.
func (a *API) CastVote(w http.ResponseWriter, r *http.Request) {
	var in services.VoteInput
	if err := decodeJSON(r, &in); err != nil {
		a.writeError(w, r, err)
		return
	}

	vote, err := a.votes.Cast(r.Context(), in, clientIP(r))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeData(w, http.StatusCreated, map[string]any{
		"vote":    vote,
		"message": "Vote recorded successfully",
	})
}

// DeleteVote removes a vote by the id query parameter.
func (a *API) DeleteVote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		a.writeError(w, r, &Error{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_ERROR",
			Message: "Invalid input data",
			Details: map[string]string{"id": "id must be an integer"},
		})
		return
	}

	vote, err := a.votes.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.writeError(w, r, newError(http.StatusNotFound, "RESOURCE_NOT_FOUND", "Vote not found"))
			return
		}
		a.writeError(w, r, err)
		return
	}

	a.writeData(w, http.StatusOK, map[string]any{
		"deleted": vote,
		"message": "Vote deleted successfully",
	})
}
