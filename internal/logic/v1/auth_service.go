package v1

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// AuthService implements registration and the session token lifecycle.
// It depends on the chef repository interface (injected via constructor) and
// MUST NOT access the database or SQL directly.
//
// A token moves absent -> active on login and active -> absent on logout.
// There is no expired state.
type AuthService struct {
	chefs    domain.ChefRepository
	sessions *SessionStore
}

// NewAuthService creates a new AuthService with the given repository and
// session store.
func NewAuthService(chefs domain.ChefRepository, sessions *SessionStore) *AuthService {
	return &AuthService{
		chefs:    chefs,
		sessions: sessions,
	}
}

// Register validates and persists a new chef. Blank username or password is
// rejected before any storage call; a taken username yields ErrChefExists.
// On success the generated id is written back into chef.
func (s *AuthService) Register(ctx context.Context, chef *domain.Chef) error {
	if strings.TrimSpace(chef.Username) == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(chef.Password) == "" {
		return ErrPasswordRequired
	}

	existing, err := s.chefs.GetByUsername(ctx, chef.Username)
	if err != nil {
		return fmt.Errorf("check existing chef: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("register chef %q: %w", chef.Username, ErrChefExists)
	}

	if _, err := s.chefs.Create(ctx, chef); err != nil {
		return fmt.Errorf("insert chef: %w", err)
	}

	return nil
}

// Login verifies the credentials and, on success, creates a session and
// returns its token. The username lookup is case-sensitive and the password
// is compared exactly, as stored. An unknown username and a wrong password
// produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	chef, err := s.chefs.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("query chef %q: %w", username, err)
	}
	if chef == nil || !passwordMatches(chef.Password, password) {
		return "", fmt.Errorf("authenticate chef: %w", ErrInvalidCredentials)
	}

	return s.sessions.Create(*chef), nil
}

// Logout invalidates the session for token. Logging out a token that is
// already absent is idempotent.
func (s *AuthService) Logout(token string) {
	s.sessions.Invalidate(token)
}

// IsValid reports whether token identifies an active session.
func (s *AuthService) IsValid(token string) bool {
	_, ok := s.sessions.Lookup(token)
	return ok
}

// ResolveChef returns the chef bound to an active session token.
func (s *AuthService) ResolveChef(token string) (*domain.Chef, bool) {
	chef, ok := s.sessions.Lookup(token)
	if !ok {
		return nil, false
	}
	return &chef, true
}

// passwordMatches compares the stored credential with the candidate in
// constant time. The credential is stored as given; there is no hashing
// layer in this design.
func passwordMatches(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
