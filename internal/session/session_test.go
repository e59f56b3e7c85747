package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/log"
)

// fakeBackend simulates the TeamMaker auth and user endpoints
type fakeBackend struct {
	srv *httptest.Server

	validToken   string
	password     string
	username     string
	userID       uuid.UUID
	registered   atomic.Bool
	loginFails   atomic.Bool
	meFails      atomic.Bool
	requestCount atomic.Int64
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		validToken: "valid-token",
		password:   "secret",
		username:   "alice",
		userID:     uuid.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		b.requestCount.Add(1)
		b.registered.Store(true)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.requestCount.Add(1)
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if b.loginFails.Load() || req.Login != b.username || req.Password != b.password {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(api.AuthResponse{Token: b.validToken, Role: "USER"})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		b.requestCount.Add(1)
		auth := r.Header.Get("Authorization")
		if b.meFails.Load() || auth != "Bearer "+b.validToken {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Token invalid or expired"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(api.User{ID: b.userID, Username: b.username, Email: "alice@example.com"})
	})
	mux.HandleFunc("PUT /users/me", func(w http.ResponseWriter, r *http.Request) {
		b.requestCount.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+b.validToken {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Token invalid or expired"}`))
			return
		}
		var update api.ProfileUpdate
		_ = json.NewDecoder(r.Body).Decode(&update)
		user := api.User{ID: b.userID, Username: b.username, Email: "alice@example.com"}
		if update.Bio != nil {
			user.Bio = *update.Bio
		}
		_ = json.NewEncoder(w).Encode(user)
	})

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func newManager(b *fakeBackend, store TokenStore) *Manager {
	client := api.NewClient(b.srv.URL)
	return NewManager(client, store, log.Development())
}

func TestInitializeWithoutToken(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)

	status := m.Initialize(context.Background())
	assert.Equal(t, StatusAnonymous, status)
	assert.Nil(t, m.Identity())
	assert.Equal(t, int64(0), b.requestCount.Load(), "no token means no identity fetch")
}

func TestInitializeWithValidToken(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	require.NoError(t, store.Save(b.validToken))
	m := newManager(b, store)

	status := m.Initialize(context.Background())
	assert.Equal(t, StatusAuthenticated, status)
	require.NotNil(t, m.Identity())
	assert.Equal(t, "alice", m.Identity().Username)
}

func TestInitializeWithRejectedToken(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	require.NoError(t, store.Save("stale-token"))
	m := newManager(b, store)

	status := m.Initialize(context.Background())
	assert.Equal(t, StatusAnonymous, status)
	assert.Nil(t, m.Identity())

	stored, _ := store.Load()
	assert.Empty(t, stored, "rejected token must be discarded")
}

func TestInitializeIsIdempotent(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	require.NoError(t, store.Save(b.validToken))
	m := newManager(b, store)

	first := m.Initialize(context.Background())
	count := b.requestCount.Load()
	second := m.Initialize(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, count, b.requestCount.Load(), "second call must not re-fetch")
}

func TestLoginSuccess(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	result := m.Login(context.Background(), "alice", "secret")
	require.True(t, result.Success, result.Error)
	assert.Equal(t, StatusAuthenticated, m.Status())

	stored, _ := store.Load()
	assert.Equal(t, b.validToken, stored)
}

func TestLoginThenReloadYieldsSameIdentity(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	result := m.Login(context.Background(), "alice", "secret")
	require.True(t, result.Success)
	loggedIn := m.Identity()

	// Simulate application reload: fresh manager, same persisted store.
	m2 := newManager(b, store)
	status := m2.Initialize(context.Background())
	require.Equal(t, StatusAuthenticated, status)
	assert.Equal(t, loggedIn.ID, m2.Identity().ID)
	assert.Equal(t, loggedIn.Username, m2.Identity().Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	result := m.Login(context.Background(), "alice", "wrong")
	require.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Error)
	assert.Equal(t, StatusAnonymous, m.Status())

	stored, _ := store.Load()
	assert.Empty(t, stored, "no token persisted on failed login")
}

func TestLoginRollsBackWhenIdentityFetchFails(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	b.meFails.Store(true)
	result := m.Login(context.Background(), "alice", "secret")
	require.False(t, result.Success)
	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Nil(t, m.Identity())

	stored, _ := store.Load()
	assert.Empty(t, stored, "token must not survive a failed identity fetch")
}

func TestRegisterCascadesIntoLogin(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	result := m.Register(context.Background(), api.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.True(t, result.Success, result.Error)
	assert.True(t, b.registered.Load())
	assert.Equal(t, StatusAuthenticated, m.Status())
}

func TestRegisterReportsFailureWhenCascadedLoginFails(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	b.loginFails.Store(true)
	result := m.Register(context.Background(), api.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})

	require.False(t, result.Success)
	assert.True(t, b.registered.Load(), "account was created server-side")
	assert.True(t, strings.HasPrefix(result.Error, "registration succeeded but login failed"), result.Error)
	assert.Equal(t, StatusAnonymous, m.Status())
}

func TestLogoutIsIdempotent(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	result := m.Login(context.Background(), "alice", "secret")
	require.True(t, result.Success)

	m.Logout()
	m.Logout()

	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Nil(t, m.Identity())
	stored, _ := store.Load()
	assert.Empty(t, stored)
}

func TestUpdateIdentity(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())

	require.True(t, m.Login(context.Background(), "alice", "secret").Success)

	bio := "Building teams"
	result := m.UpdateIdentity(context.Background(), api.ProfileUpdate{Bio: &bio})
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Building teams", m.Identity().Bio)
}

func TestUpdateIdentityRequiresAuthentication(t *testing.T) {
	b := newFakeBackend(t)
	m := newManager(b, NewMemStore())
	m.Initialize(context.Background())

	bio := "nope"
	result := m.UpdateIdentity(context.Background(), api.ProfileUpdate{Bio: &bio})
	require.False(t, result.Success)
}

func TestUnauthorizedResponseClearsPersistedToken(t *testing.T) {
	b := newFakeBackend(t)
	store := NewMemStore()
	m := newManager(b, store)
	m.Initialize(context.Background())
	require.True(t, m.Login(context.Background(), "alice", "secret").Success)

	// Token invalidated server-side; next authenticated call returns 401
	// and the global hook wipes the persisted credential.
	b.meFails.Store(true)

	bio := "stale"
	result := m.UpdateIdentity(context.Background(), api.ProfileUpdate{Bio: &bio})
	require.False(t, result.Success)

	stored, _ := store.Load()
	assert.Empty(t, stored, "401 hook must clear the persisted token")
}

func TestSnapshotIsACopy(t *testing.T) {
	b := newFakeBackend(t)
	m := newManager(b, NewMemStore())
	m.Initialize(context.Background())
	require.True(t, m.Login(context.Background(), "alice", "secret").Success)

	snap := m.Snapshot()
	require.NotNil(t, snap.Identity)
	snap.Identity.Username = "mallory"

	assert.Equal(t, "alice", m.Identity().Username, "mutating a snapshot must not affect the session")
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusInitializing, "initializing"},
		{StatusAuthenticated, "authenticated"},
		{StatusAnonymous, "anonymous"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
