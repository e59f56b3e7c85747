package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/teamupapp/teamup/internal/errors"
)

// TokenStore persists the bearer token between runs.
// Load returns an empty token (not an error) when nothing is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// storedCredentials is the on-disk shape of the credentials file
type storedCredentials struct {
	Token string `json:"token"`
}

// FileStore persists the token as a JSON file with owner-only permissions
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a token store backed by the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored token, returning empty when the file does not exist
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSessionStoreRead, "failed to read credentials", err)
	}

	var creds storedCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// A corrupt credentials file is treated as absent; the next login rewrites it.
		return "", nil
	}
	return creds.Token, nil
}

// Save writes the token, creating the parent directory if needed
func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "failed to create credentials directory", err)
	}

	data, err := json.MarshalIndent(storedCredentials{Token: token}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "failed to encode credentials", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "failed to write credentials", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "failed to remove credentials", err)
	}
	return nil
}

// MemStore is an in-memory TokenStore for tests
type MemStore struct {
	mu    sync.Mutex
	token string
}

// NewMemStore creates an empty in-memory token store
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns the stored token
func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save stores the token
func (s *MemStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored token
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
