// Package credentials persists the access/refresh token pair between runs.
//
// Tokens carry no local expiry metadata: expiry is discovered reactively when
// the API answers 401 and the request pipeline refreshes the access token.
package credentials

import "sync"

// Store holds the bearer credentials for the auction platform.
//
// SetTokens stores the access token when non-empty and the refresh token only
// when provided, so a refresh-only response updates the access token without
// touching the refresh token.
type Store interface {
	SetTokens(access, refresh string) error
	Access() string
	Refresh() string
	Clear() error
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{}
}

// SetTokens implements Store
func (s *MemStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if access != "" {
		s.access = access
	}
	if refresh != "" {
		s.refresh = refresh
	}
	return nil
}

// Access implements Store
func (s *MemStore) Access() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// Refresh implements Store
func (s *MemStore) Refresh() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// Clear implements Store. Clearing an empty store is a no-op.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return nil
}
