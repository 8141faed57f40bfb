// Package server wires the whole backend together: configuration, logging,
// the Postgres storage layer with embedded migrations, the domain services,
// and the HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avoronovs/partyplan/internal/logging"
	"github.com/avoronovs/partyplan/internal/server/config"
	"github.com/avoronovs/partyplan/internal/server/httpapi"
	"github.com/avoronovs/partyplan/internal/server/services"
	"github.com/avoronovs/partyplan/internal/server/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage *storage.Postgres
	api     *httpapi.API
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON()

	st, err := storage.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	api := httpapi.New(
		services.NewUserService(st.Users(), cfg),
		services.NewVoteService(st.Votes()),
		services.NewTextAnalysisService(),
		cfg,
		logger,
	)

	return &App{config: cfg, logger: logger, storage: st, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or an OS signal arrives,
// then closes the database connection.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	err := app.api.Serve(ctx, app.config.EndpointAddr)

	if closeErr := app.storage.Close(); closeErr != nil {
		app.logger.Error(ctx, "db close error", "error", closeErr)
	}

	return err
}
