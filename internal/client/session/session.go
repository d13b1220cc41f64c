// Package session holds the client's authentication state: the bearer
// token, the login state machine, and the advisory attempt counter.
//
// Restoring a session trusts the mere presence of a stored token and does
// not revalidate it against the service; a token that has since expired
// surfaces as an ordinary request failure on the next call.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/api"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

// State names a position in the login state machine.
type State string

const (
	// StateIdle means no login has been attempted or the user logged out.
	StateIdle State = "idle"
	// StatePending means a login call is in flight.
	StatePending State = "pending"
	// StateAuthenticated means a token is held.
	StateAuthenticated State = "authenticated"
	// StateFailed means the last login attempt was rejected. A new
	// login is always permitted from here; there is no lockout.
	StateFailed State = "failed"
)

// LoginClient performs the remote login call.
type LoginClient interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
}

// TokenStore persists the session token between runs. Absence of a
// stored token means logged out.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	// Save durably stores the token.
	Save(token string) error
	// Clear removes the stored token.
	Clear() error
}

// Store is the session store. All methods are safe for use from the
// single event loop driving the client.
type Store struct {
	mu          sync.Mutex
	state       State
	token       string
	errMsg      string
	attempts    int
	lastAttempt time.Time

	client LoginClient
	tokens TokenStore
	log    *zap.Logger
	now    func() time.Time
}

// New constructs a session store in the idle state.
func New(client LoginClient, tokens TokenStore, log *zap.Logger) *Store {
	return &Store{
		state:  StateIdle,
		client: client,
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
}

// Login runs the pending → authenticated/failed transition. On success
// the token is held in memory and then persisted as an explicit step;
// a persistence failure is logged but does not fail the login. On
// rejection the attempt counter and timestamp are recorded for display.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	s.mu.Lock()
	s.state = StatePending
	s.errMsg = ""
	s.mu.Unlock()

	token, err := s.client.Login(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.errMsg = api.Message(err)
		s.attempts++
		s.lastAttempt = s.now()
		return err
	}

	s.state = StateAuthenticated
	s.token = token
	s.attempts = 0

	if err := s.tokens.Save(token); err != nil {
		s.log.Error("failed to persist session token", zap.Error(err))
	}
	return nil
}

// Logout clears the token from memory and durable storage and returns
// the session to idle. It never fails; a storage error is only logged.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.token = ""
	s.errMsg = ""
	if err := s.tokens.Clear(); err != nil {
		s.log.Error("failed to clear stored token", zap.Error(err))
	}
}

// Restore reads durable storage at startup. A present token moves the
// session straight to authenticated (trust-on-presence); an absent one
// leaves it idle.
func (s *Store) Restore() error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" {
		s.state = StateIdle
		return nil
	}
	s.state = StateAuthenticated
	s.token = token
	return nil
}

// Token returns the current bearer token, or "" when not authenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State returns the current login state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated && s.token != ""
}

// Err returns the failure message from the last rejected login, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Attempts returns the advisory count of consecutive failed logins and
// the time of the last failure.
func (s *Store) Attempts() (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts, s.lastAttempt
}
