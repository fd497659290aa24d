// Package session holds the client-side authentication state: a single
// bearer token persisted across runs. The store is the only mutable state
// shared between façades; the transport reads it at request-issue time, so
// an update is visible to every call issued after it returns.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is the session token holder. Clear reports whether a token was
// actually removed so the transport can keep its session-expired side
// effect idempotent under concurrent 401s.
type Store interface {
	Token() (string, bool)
	SetToken(token string) error
	Clear() (bool, error)
}

// persistedSession is the on-disk shape of the token file.
type persistedSession struct {
	Token string `json:"token"`
}

// FileStore persists the token to a 0600 JSON file and keeps an in-memory
// copy so reads on the request path never touch disk. At most one token is
// held at a time.
type FileStore struct {
	path string

	mu    sync.Mutex
	token string
}

// DefaultTokenPath returns ~/.gedo/token.json.
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gedo", "token.json"), nil
}

// NewFileStore opens the store at path, loading any persisted token. A
// missing file is not an error; it simply means no active session.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var p persistedSession
	if err := json.Unmarshal(data, &p); err != nil {
		// A corrupt token file behaves like an expired session.
		return s, nil
	}
	s.token = p.Token
	return s, nil
}

// Token returns the current token, if any.
func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// SetToken stores token in memory and on disk. The in-memory copy is
// updated before the disk write, so a request issued synchronously after
// SetToken returns already carries the new token.
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	data, err := json.MarshalIndent(persistedSession{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the token from memory and disk. It reports whether a token
// was present; a second Clear is a no-op.
func (s *FileStore) Clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	had := s.token != ""
	s.token = ""

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return had, err
	}
	return had, nil
}
