package httpapi

import (
	"net/http"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/server/services"
)

// Signup registers a new user. 201 with the user (digest excluded); the
// caller is expected to log in afterwards.
func (a *API) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
	if err := decodeJSON(r, &in); err != nil {
		a.writeError(w, r, err)
		return
	}

	user, err := a.users.Signup(r.Context(), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeData(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": "User registered successfully",
	})
}

// Login verifies credentials and returns the user plus a bearer token. The
// token is also set as an HttpOnly, SameSite=Strict cookie so browser
// clients need no header handling.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if err := decodeJSON(r, &in); err != nil {
		a.writeError(w, r, err)
		return
	}

	user, token, err := a.users.Login(r.Context(), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.users.TokenTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	a.writeData(w, http.StatusOK, map[string]any{
		"user":    user,
		"token":   token,
		"message": "Login successful",
	})
}

// Logout clears the auth cookie. Tokens already handed out stay
// cryptographically valid until expiry; only the cookie copy is dropped.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	a.writeData(w, http.StatusOK, map[string]any{
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated identity. Runs behind requireAuth.
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		a.writeError(w, r, errUnauthorized)
		return
	}

	a.writeData(w, http.StatusOK, map[string]any{
		"user": identity,
	})
}
