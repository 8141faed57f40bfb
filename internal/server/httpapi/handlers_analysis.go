package httpapi

import (
	"net/http"

	"github.com/avoronovs/partyplan/internal/server/services"
)

// AnalyzeText runs the stateless word/character/sentiment analysis.
func (a *API) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var in services.AnalyzeInput
	if err := decodeJSON(r, &in); err != nil {
		a.writeError(w, r, err)
		return
	}

	result, err := a.text.Analyze(in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeData(w, http.StatusOK, result)
}
