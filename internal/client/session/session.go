// Package session tracks the client's authentication state: an explicit
// state machine driven by login/logout and by server 401s, with local
// persistence so a session survives restarts, and subscriber notification
// so the CLI prompt can follow state changes.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/avoronovs/partyplan/internal/client/api"
	"github.com/avoronovs/partyplan/internal/client/repositories/metadata"
)

// State is the session's authentication state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

// ErrSessionExpired is returned by Do when the server rejected previously
// valid credentials. The session has already been reset locally.
var ErrSessionExpired = errors.New("session expired, please log in again")

// Metadata keys for the persisted session.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Client is the API surface the session drives. *api.Client satisfies it.
type Client interface {
	Login(ctx context.Context, email, password string) (*api.Identity, string, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*api.Identity, error)
	SetToken(token string)
	Token() string
}

type Session struct {
	mu       sync.Mutex
	client   Client
	store    metadata.Repository
	state    State
	identity *api.Identity
	subs     []func(State)
}

func New(client Client, store metadata.Repository) *Session {
	return &Session{
		client: client,
		store:  store,
		state:  StateUnauthenticated,
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns the authenticated identity, or nil.
func (s *Session) Identity() *api.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Subscribe registers fn to be called on every state transition. Callbacks
// run synchronously on the goroutine driving the transition and must not
// call back into the session.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// setState must be called with the mutex held. It releases the mutex while
// notifying so subscribers observe a consistent state.
func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.state = state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)

	s.mu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
	s.mu.Lock()
}

// Login authenticates with the server and persists the session locally.
// The state passes through StateAuthenticating; a failure lands back in
// StateUnauthenticated.
func (s *Session) Login(ctx context.Context, email, password string) (*api.Identity, error) {
	s.mu.Lock()
	s.setState(StateAuthenticating)
	s.mu.Unlock()

	identity, token, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.mu.Lock()
		s.setState(StateUnauthenticated)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.identity = identity
	s.setState(StateAuthenticated)
	s.mu.Unlock()

	if err := s.save(ctx, identity, token); err != nil {
		// The in-memory session is still valid; it just will not survive
		// a restart.
		return identity, fmt.Errorf("session save error: %w", err)
	}

	return identity, nil
}

func (s *Session) save(ctx context.Context, identity *api.Identity, token string) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.store.SetAll(ctx, map[string][]byte{
		keyUser:  data,
		keyToken: []byte(token),
	})
}

// Restore loads a previously saved session from the local store. It returns
// false when no saved session exists. The restored token is installed
// as-is; an expired one surfaces as ErrSessionExpired on the next Do.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	token, err := s.store.Get(ctx, keyToken)
	if err != nil {
		return false, err
	}
	if len(token) == 0 {
		return false, nil
	}

	data, err := s.store.Get(ctx, keyUser)
	if err != nil {
		return false, err
	}

	var identity api.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return false, fmt.Errorf("saved session corrupt: %w", err)
	}

	s.client.SetToken(string(token))

	s.mu.Lock()
	s.identity = &identity
	s.setState(StateAuthenticated)
	s.mu.Unlock()

	return true, nil
}

// Logout resets the session. Local state is cleared first so the caller is
// logged out even when the server is unreachable; the server call is best
// effort.
func (s *Session) Logout(ctx context.Context) error {
	s.reset(ctx)
	return s.client.Logout(ctx)
}

// reset clears local state and persistence without touching the server.
func (s *Session) reset(ctx context.Context) {
	s.client.SetToken("")
	_ = s.store.Clear(ctx)

	s.mu.Lock()
	s.identity = nil
	s.setState(StateUnauthenticated)
	s.mu.Unlock()
}

// Do runs fn and applies the session's single 401 policy: when fn reports
// the server rejected our credentials, the session is reset locally and
// ErrSessionExpired is returned in place of the original error. All other
// errors pass through unchanged.
func (s *Session) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}

	if errors.Is(err, api.ErrUnauthorized) && s.State() == StateAuthenticated {
		s.reset(ctx)
		return ErrSessionExpired
	}
	return err
}

// Me fetches the identity for the current credentials via Do, so a stale
// token expires the session.
func (s *Session) Me(ctx context.Context) (*api.Identity, error) {
	var identity *api.Identity
	err := s.Do(ctx, func(ctx context.Context) error {
		var err error
		identity, err = s.client.Me(ctx)
		return err
	})
	return identity, err
}
