// Package cli implements the interactive PartyPlan client: a small REPL over
// the HTTP API with a locally persisted session.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/avoronovs/partyplan/internal/client/api"
	"github.com/avoronovs/partyplan/internal/client/config"
	"github.com/avoronovs/partyplan/internal/client/session"
	"github.com/avoronovs/partyplan/internal/client/storage"
)

// sessionService is the slice of *session.Session the commands use.
type sessionService interface {
	Login(ctx context.Context, email, password string) (*api.Identity, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*api.Identity, error)
	State() session.State
	Identity() *api.Identity
}

// apiService is the slice of *api.Client the commands use directly.
type apiService interface {
	Signup(ctx context.Context, in api.SignupRequest) (*api.Identity, error)
	PollResults(ctx context.Context) ([]api.PollItem, error)
	CastVote(ctx context.Context, option string) (*api.Vote, error)
	DeleteVote(ctx context.Context, id int) (*api.Vote, error)
	AnalyzeText(ctx context.Context, text string) (*api.AnalysisResult, error)
	Ping(ctx context.Context) error
}

type App struct {
	config  *config.Config
	api     apiService
	session sessionService
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, metadataRepo, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := api.New(c.ServerURL)
	if err != nil {
		db.Close()
		return nil, err
	}

	sess := session.New(apiClient, metadataRepo)

	if ok, err := sess.Restore(ctx); err != nil {
		log.Printf("could not restore saved session: %s", err.Error())
	} else if ok {
		log.Printf("Welcome back, %s!", sess.Identity().FirstName)
	}

	return &App{
		config:  c,
		api:     apiClient,
		session: sess,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// getStatus renders the prompt suffix: the logged-in user's name, if any.
func (a *App) getStatus() string {
	if identity := a.session.Identity(); identity != nil {
		return fmt.Sprintf("(%s)", identity.Email)
	}
	return ""
}
