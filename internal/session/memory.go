package session

import "sync"

// MemStore is an in-memory Store. It backs tests and any embedding that
// does not want the token to survive the process.
type MemStore struct {
	mu    sync.Mutex
	token string
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.token != ""
	s.token = ""
	return had, nil
}
