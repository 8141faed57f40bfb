package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Serve runs the HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully with a short drain window.
func (a *API) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info(ctx, "listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
