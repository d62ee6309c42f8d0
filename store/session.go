package store

import "sync"

// GuestSuffix is the storage-key suffix used when no user is signed in.
const GuestSuffix = "guest"

// Session holds the active user identity the stores key their storage by.
// It is injected into each store instead of read from ambient globals so
// tests can drive login and logout directly.
type Session struct {
	mu     sync.RWMutex
	userID string
}

func NewSession() *Session {
	return &Session{}
}

// Login sets the active user. Callers are expected to Reload dependent
// stores afterwards so their keys re-derive.
func (s *Session) Login(userID string) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
}

func (s *Session) Logout() {
	s.Login("")
}

// UserID returns the signed-in user's id, or "" for a guest session.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// KeySuffix is the per-user part of a store's storage key.
func (s *Session) KeySuffix() string {
	if id := s.UserID(); id != "" {
		return id
	}
	return GuestSuffix
}
