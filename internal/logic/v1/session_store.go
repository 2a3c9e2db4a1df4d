package v1

import (
	"sync"

	"github.com/google/uuid"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// SessionStore is the process-wide mapping from opaque session token to the
// authenticated chef. Entries live until explicitly invalidated; there is no
// expiry. The store is owned by the AuthService that is handed it — it is
// never package-global state.
//
// Login and logout from overlapping requests mutate the map concurrently, so
// every access goes through the mutex. A caller that receives a token from
// Create sees it in Lookup immediately.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Chef
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Chef)}
}

// Create mints a fresh unguessable token, maps it to chef and returns it.
// Tokens are 128-bit random UUIDs, never reused and never derived from
// caller input.
func (s *SessionStore) Create(chef domain.Chef) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = chef
	s.mu.Unlock()

	return token
}

// Lookup returns the chef bound to token, if any.
func (s *SessionStore) Lookup(token string) (domain.Chef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chef, ok := s.sessions[token]
	return chef, ok
}

// Invalidate removes the session for token. Invalidating an unknown or
// already-invalidated token is a no-op.
func (s *SessionStore) Invalidate(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
