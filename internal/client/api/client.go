// Package api is the HTTP client for the PartyPlan backend. It speaks the
// server's JSON envelope, carries the bearer token on authenticated calls,
// and keeps a cookie jar so the auth cookie set at login is replayed the
// way a browser would.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/avoronovs/partyplan/internal/common"
)

// Identity mirrors the user object in server responses.
type Identity struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PollItem is one row of the aggregated poll standings.
type PollItem struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

// Vote is a recorded ballot.
type Vote struct {
	ID        int    `json:"id"`
	Option    string `json:"option"`
	IPAddress string `json:"ipAddress"`
}

// Analysis holds the computed text metrics.
type Analysis struct {
	WordCount        int     `json:"wordCount"`
	CharCount        int     `json:"charCount"`
	MostFrequentWord string  `json:"mostFrequentWord"`
	SentimentScore   float64 `json:"sentimentScore"`
}

// AnalysisResult is the full text-analysis response.
type AnalysisResult struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Analysis  Analysis  `json:"analysis"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SetToken installs the bearer token attached to subsequent requests. An
// empty string drops it.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the currently installed bearer token.
func (c *Client) Token() string { return c.token }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Err     *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// do performs one request/response round trip. The request body (if any) is
// sent as JSON; the envelope's data is unmarshalled into out (if non-nil).
// Transport failures wrap ErrUnavailable; envelope failures become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rdr *bytes.Buffer
	if body != nil {
		rdr = &bytes.Buffer{}
		if err := json.NewEncoder(rdr).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	} else {
		rdr = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
		}
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Code: "INTERNAL_SERVER_ERROR"}
		if env.Err != nil {
			apiErr.Code = env.Err.Code
			apiErr.Message = env.Err.Message
			if len(env.Err.Details) > 0 {
				// Field details are best effort; other shapes are dropped.
				_ = json.Unmarshal(env.Err.Details, &apiErr.Details)
			}
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// SignupRequest is the payload for Signup.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Signup registers a new account. A successful signup does not log in; call
// Login afterwards.
func (c *Client) Signup(ctx context.Context, in SignupRequest) (*Identity, error) {
	var data struct {
		User Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", in, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// Login authenticates and installs the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, string, error) {
	in := map[string]string{"email": email, "password": password}

	var data struct {
		User  Identity `json:"user"`
		Token string   `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &data); err != nil {
		return nil, "", err
	}

	c.token = data.Token
	return &data.User, data.Token, nil
}

// Logout tells the server to clear its cookie and drops the local token.
// The local token is dropped even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""
	return err
}

// Me returns the identity of the current credentials.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var data struct {
		User Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// PollResults returns the current standings, highest count first.
func (c *Client) PollResults(ctx context.Context) ([]PollItem, error) {
	var data struct {
		Items []PollItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/poll", nil, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

// CastVote records a vote for the given option.
func (c *Client) CastVote(ctx context.Context, option string) (*Vote, error) {
	in := map[string]string{"option": option}

	var data struct {
		Vote Vote `json:"vote"`
	}
	if err := c.do(ctx, http.MethodPost, "/poll", in, &data); err != nil {
		return nil, err
	}
	return &data.Vote, nil
}

// DeleteVote removes a vote by id.
func (c *Client) DeleteVote(ctx context.Context, id int) (*Vote, error) {
	var data struct {
		Deleted Vote `json:"deleted"`
	}
	if err := c.do(ctx, http.MethodDelete, "/poll?id="+strconv.Itoa(id), nil, &data); err != nil {
		return nil, err
	}
	return &data.Deleted, nil
}

// AnalyzeText runs the server-side text analysis on the given text.
func (c *Client) AnalyzeText(ctx context.Context, text string) (*AnalysisResult, error) {
	in := map[string]string{"text": text}

	var result AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/text-analysis", in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks server liveness via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
