package httpapi

import (
	"net/http"

	"github.com/avoronovs/partyplan/internal/logging"
	"github.com/avoronovs/partyplan/internal/server/config"
	"github.com/avoronovs/partyplan/internal/server/services"
)

// API bundles the route handlers with their dependencies.
type API struct {
	users  *services.UserService
	votes  *services.VoteService
	text   *services.TextAnalysisService
	secret []byte
	log    logging.Logger
}

func New(users *services.UserService, votes *services.VoteService, text *services.TextAnalysisService, cfg *config.Config, log logging.Logger) *API {
	return &API{
		users:  users,
		votes:  votes,
		text:   text,
		secret: []byte(cfg.SecretKey),
		log:    log.With("component", "httpapi"),
	}
}

// Router builds the full handler chain: mux → recovery → logging → CORS.
func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Credential lifecycle
	mux.HandleFunc("POST /auth/signup", a.Signup)
	mux.HandleFunc("POST /auth/login", a.Login)
	mux.HandleFunc("POST /auth/logout", a.Logout)
	mux.HandleFunc("GET /auth/me", a.requireAuth(a.Me))

	// Poll
	mux.HandleFunc("GET /poll", a.PollResults)
	mux.HandleFunc("POST /poll", a.CastVote)
	mux.HandleFunc("DELETE /poll", a.DeleteVote)

	// Text analysis
	mux.HandleFunc("POST /text-analysis", a.AnalyzeText)

	return withCORS(a.withLogging(a.withRecovery(mux)))
}
