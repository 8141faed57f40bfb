package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/avoronovs/partyplan/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFromContext returns the identity placed in the context by
// requireAuth. The bool is false for unprotected handlers.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

// requireAuth is the auth gate. It resolves an identity from the request
// (cookie first, Bearer header second) and either short-circuits with the
// UNAUTHORIZED envelope or invokes next with the identity in the context.
// The wrapped handler runs only after successful resolution, so a rejected
// request has no side effects.
func (a *API) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.ResolveRequest(r, a.secret)
		if !ok {
			a.writeError(w, r, errUnauthorized)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	}
}

// withRecovery converts handler panics into the 500 envelope instead of
// letting net/http kill the connection.
func (a *API) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				a.log.Error(r.Context(), "handler panic", "path", r.URL.Path, "panic", p)
				a.writeError(w, r, newError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with method, path, and duration.
func (a *API) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Info(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// withCORS allows cross-origin requests from any origin and answers
// preflights directly with a 24h cache hint.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the caller's address, preferring proxy headers.
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First address in the chain is the original client.
		if i := strings.IndexAny(xff, ", "); i >= 0 {
			return xff[:i]
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[:i]
	}
	return addr
}
