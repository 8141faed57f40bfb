package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronovs/partyplan/internal/common"
)

func writeEnvelope(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLogin_InstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "jake@example.com", in["email"])

		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"user":  Identity{ID: 1, Email: "jake@example.com", FirstName: "Jake"},
				"token": "header.payload.sig",
			},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	user, token, err := c.Login(context.Background(), "jake@example.com", "letmein12")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "header.payload.sig", token)
	assert.Equal(t, "header.payload.sig", c.Token())
}

func TestMe_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, common.BearerPrefix+"tok123", r.Header.Get(common.AuthHeaderName))

		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"user": Identity{ID: 7, Email: "a@b.c"}},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	c.SetToken("tok123")

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
}

func TestDo_UnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   map[string]any{"code": "UNAUTHORIZED", "message": "Authentication required"},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestDo_ValidationDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid input data",
				"details": map[string]string{"email": "email must be a valid email address"},
			},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Signup(context.Background(), SignupRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Contains(t, apiErr.Details, "email")
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestDo_ServerDown(t *testing.T) {
	c, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	err = c.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestLogout_DropsTokenEvenOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   map[string]any{"code": "INTERNAL_SERVER_ERROR", "message": "An unexpected error occurred"},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	c.SetToken("tok123")

	require.Error(t, c.Logout(context.Background()))
	assert.Empty(t, c.Token())
}

func TestCookieJarReplaysAuthCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: common.AuthCookieName, Value: "cookie-token", Path: "/"})
			writeEnvelope(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"user": Identity{ID: 1}, "token": "cookie-token"},
			})
		case "/auth/me":
			cookie, err := r.Cookie(common.AuthCookieName)
			require.NoError(t, err)
			assert.Equal(t, "cookie-token", cookie.Value)
			writeEnvelope(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"user": Identity{ID: 1}},
			})
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, _, err = c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	require.NoError(t, err)
}
