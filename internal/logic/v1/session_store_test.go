package v1

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

func TestSessionStoreCreateThenLookup(t *testing.T) {
	store := NewSessionStore()

	token := store.Create(domain.Chef{ID: 1, Username: "alice"})
	require.NotEmpty(t, token)

	chef, ok := store.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, "alice", chef.Username)
}

func TestSessionStoreTokensAreUnique(t *testing.T) {
	store := NewSessionStore()
	chef := domain.Chef{ID: 1, Username: "alice"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := store.Create(chef)
		require.False(t, seen[token], "token minted twice")
		seen[token] = true
	}
}

func TestSessionStoreInvalidateIsIdempotent(t *testing.T) {
	store := NewSessionStore()
	token := store.Create(domain.Chef{ID: 1, Username: "alice"})

	store.Invalidate(token)
	_, ok := store.Lookup(token)
	assert.False(t, ok)

	// Second invalidation of the same token observes the same end state.
	store.Invalidate(token)
	_, ok = store.Lookup(token)
	assert.False(t, ok)

	store.Invalidate("never-issued")
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	tokens := make([]string, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			chef := domain.Chef{ID: i + 1, Username: fmt.Sprintf("chef-%d", i)}
			token := store.Create(chef)
			tokens[i] = token

			// A token returned by Create is immediately visible.
			got, ok := store.Lookup(token)
			if !ok || got.ID != chef.ID {
				t.Errorf("token %q not visible after create", token)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Invalidate(tokens[i])
			store.Invalidate(tokens[i])
		}(i)
	}
	wg.Wait()

	for _, token := range tokens {
		_, ok := store.Lookup(token)
		assert.False(t, ok)
	}
}
