package auth

import (
	"net/http"
	"strings"

	"github.com/avoronovs/partyplan/internal/common"
)

// ResolveRequest extracts a candidate token from an inbound request and
// verifies it.
//
// Lookup order (first match wins):
//  1. the auth_token cookie,
//  2. an "Authorization: Bearer <token>" header.
//
// The cookie deliberately takes precedence even when both carry tokens, so a
// stale header presented by a web client cannot shadow its cookie session.
// Returns (identity, true) on success and (zero, false) when no credential
// was found or verification failed.
func ResolveRequest(r *http.Request, secretKey []byte) (Identity, bool) {
	var candidate string

	if c, err := r.Cookie(common.AuthCookieName); err == nil && c.Value != "" {
		candidate = c.Value
	} else if h := r.Header.Get(common.AuthHeaderName); strings.HasPrefix(h, common.BearerPrefix) {
		candidate = strings.TrimPrefix(h, common.BearerPrefix)
	}

	if candidate == "" {
		return Identity{}, false
	}

	identity, err := Verify(candidate, secretKey)
	if err != nil {
		return Identity{}, false
	}
	return identity, true
}
