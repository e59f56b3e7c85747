// Package session owns the client-side authentication lifecycle: the bearer
// token, the authenticated identity, and the transitions between anonymous
// and authenticated state. All other packages receive read-only snapshots.
package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/log"
)

// Status is the session lifecycle state
type Status int

const (
	// StatusInitializing means a persisted token exists but the identity
	// fetch has not resolved yet
	StatusInitializing Status = iota
	// StatusAuthenticated means the identity fetch succeeded
	StatusAuthenticated
	// StatusAnonymous means no valid session exists
	StatusAnonymous
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a session mutation. Failures carry a
// human-readable reason; session operations never panic past their boundary.
type Result struct {
	Success bool
	Error   string
}

func success() Result {
	return Result{Success: true}
}

func failure(err error, fallback string) Result {
	msg := errors.MessageOf(err)
	if msg == "" {
		msg = fallback
	}
	return Result{Success: false, Error: msg}
}

// Snapshot is a read-only view of the session for consumers
type Snapshot struct {
	Status   Status
	Identity *api.User
}

// Manager owns the session. It is the only mutator of token and identity;
// the UI layer must not run two session mutations concurrently.
type Manager struct {
	client *api.Client
	store  TokenStore
	logger *log.Logger

	mu       sync.Mutex
	settled  bool
	status   Status
	identity *api.User
}

// NewManager creates a session manager bound to an API client and token store.
// It installs the global 401 hook on the client: any unauthorized response
// clears the persisted token so the next run starts anonymous. The hook does
// not touch in-memory session state; session operations observe the 401
// through their own error handling.
func NewManager(client *api.Client, store TokenStore, logger *log.Logger) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		logger: logger,
		status: StatusInitializing,
	}

	client.OnResponse(func(resp *http.Response) {
		if resp.StatusCode == http.StatusUnauthorized {
			logger.Debug("unauthorized response, clearing persisted token")
			_ = store.Clear()
			client.ClearToken()
		}
	})

	return m
}

// Initialize bootstraps the session from the persisted token. It is safe to
// call more than once: after the first call settles, subsequent calls return
// the settled status without re-fetching.
func (m *Manager) Initialize(ctx context.Context) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settled {
		return m.status
	}

	token, err := m.store.Load()
	if err != nil {
		m.logger.WithError(err).Warn("failed to load persisted token")
		token = ""
	}

	if token == "" {
		m.settle(StatusAnonymous, nil)
		return m.status
	}

	m.status = StatusInitializing
	m.client.SetToken(token)

	identity, err := m.client.Me(ctx)
	if err != nil {
		m.logger.WithError(err).Debug("persisted token rejected, starting anonymous")
		_ = m.store.Clear()
		m.client.ClearToken()
		m.settle(StatusAnonymous, nil)
		return m.status
	}

	m.settle(StatusAuthenticated, identity)
	return m.status
}

// Login authenticates with the backend, persists the token, and fetches the
// identity. A failed identity fetch after a nominally successful login rolls
// the session back to anonymous and reports failure.
func (m *Manager) Login(ctx context.Context, login, password string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	auth, err := m.client.Login(ctx, login, password)
	if err != nil {
		m.logger.WithError(err).Debug("login rejected")
		return failure(err, "Login failed")
	}

	if err := m.store.Save(auth.Token); err != nil {
		return failure(err, "Login failed")
	}
	m.client.SetToken(auth.Token)

	identity, err := m.client.Me(ctx)
	if err != nil {
		// Roll back: the token must not survive as an authenticated session.
		_ = m.store.Clear()
		m.client.ClearToken()
		m.settle(StatusAnonymous, nil)
		return failure(err, "Login failed")
	}

	m.settle(StatusAuthenticated, identity)
	m.logger.Info("logged in", "username", identity.Username)
	return success()
}

// Register creates an account and immediately logs in with the same
// credentials. When the cascaded login fails, Register as a whole reports
// failure even though the account was created server-side; the error says so.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) Result {
	if err := m.client.Register(ctx, req); err != nil {
		m.logger.WithError(err).Debug("registration rejected")
		return failure(err, "Registration failed")
	}

	result := m.Login(ctx, req.Username, req.Password)
	if !result.Success {
		result.Error = "registration succeeded but login failed: " + result.Error
	}
	return result
}

// Logout clears the persisted token and in-memory identity. It never fails
// and is idempotent under repeated calls.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.store.Clear()
	m.client.ClearToken()
	m.settle(StatusAnonymous, nil)
	m.logger.Info("logged out")
}

// UpdateIdentity sends updated profile fields and replaces the in-memory
// identity with the server's representation. On failure the prior identity
// is left unchanged.
func (m *Manager) UpdateIdentity(ctx context.Context, update api.ProfileUpdate) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusAuthenticated {
		return Result{Success: false, Error: "not logged in"}
	}

	identity, err := m.client.UpdateMe(ctx, update)
	if err != nil {
		return failure(err, "Update failed")
	}

	m.identity = identity
	return success()
}

// Snapshot returns a read-only view of the current session
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	var identity *api.User
	if m.identity != nil {
		copied := *m.identity
		identity = &copied
	}
	return Snapshot{Status: m.status, Identity: identity}
}

// Identity returns the authenticated user, or nil when anonymous
func (m *Manager) Identity() *api.User {
	return m.Snapshot().Identity
}

// Status returns the current lifecycle status
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// settle records a terminal lifecycle state. Authenticated iff identity is
// present; callers hold m.mu.
func (m *Manager) settle(status Status, identity *api.User) {
	m.settled = true
	m.status = status
	m.identity = identity
}
