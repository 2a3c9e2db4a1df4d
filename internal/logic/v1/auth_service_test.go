package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeChefRepo) {
	t.Helper()
	repo := newFakeChefRepo()
	return NewAuthService(repo, NewSessionStore()), repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	auth, repo := newAuthFixture(t)

	chef := domain.Chef{Username: "alice", Email: "alice@example.com", Password: "correct"}
	require.NoError(t, auth.Register(ctx, &chef))
	assert.True(t, chef.Saved())

	stored, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, chef.ID, stored.ID)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		chef    domain.Chef
		wantErr error
	}{
		{name: "blank username", chef: domain.Chef{Username: "  ", Password: "pw"}, wantErr: ErrUsernameRequired},
		{name: "blank password", chef: domain.Chef{Username: "alice", Password: ""}, wantErr: ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, repo := newAuthFixture(t)
			// Validation rejects before any storage call, so a failing
			// repository must not matter.
			repo.fail = true

			err := auth.Register(ctx, &tt.chef)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture(t)

	first := domain.Chef{Username: "alice", Password: "pw"}
	require.NoError(t, auth.Register(ctx, &first))

	second := domain.Chef{Username: "alice", Password: "other"}
	assert.ErrorIs(t, auth.Register(ctx, &second), ErrChefExists)
}

func TestLoginLifecycle(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture(t)

	chef := domain.Chef{Username: "alice", Password: "correct"}
	require.NoError(t, auth.Register(ctx, &chef))

	token, err := auth.Login(ctx, "alice", "correct")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, auth.IsValid(token))

	resolved, ok := auth.ResolveChef(token)
	require.True(t, ok)
	assert.Equal(t, "alice", resolved.Username)

	auth.Logout(token)
	assert.False(t, auth.IsValid(token))
	_, ok = auth.ResolveChef(token)
	assert.False(t, ok)

	// Logging out an absent token is a no-op.
	auth.Logout(token)
	assert.False(t, auth.IsValid(token))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture(t)

	chef := domain.Chef{Username: "alice", Password: "correct"}
	require.NoError(t, auth.Register(ctx, &chef))

	// Wrong password and unknown username surface the same sentinel.
	_, wrongPw := auth.Login(ctx, "alice", "wrong")
	_, unknown := auth.Login(ctx, "nobody", "x")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
}

func TestLoginUsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture(t)

	chef := domain.Chef{Username: "alice", Password: "correct"}
	require.NoError(t, auth.Register(ctx, &chef))

	_, err := auth.Login(ctx, "Alice", "correct")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEachSessionGetsFreshToken(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture(t)

	chef := domain.Chef{Username: "alice", Password: "correct"}
	require.NoError(t, auth.Register(ctx, &chef))

	first, err := auth.Login(ctx, "alice", "correct")
	require.NoError(t, err)
	second, err := auth.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, auth.IsValid(first))
	assert.True(t, auth.IsValid(second))
}

func TestLoginStorageFailureIsNotCredentialFailure(t *testing.T) {
	ctx := context.Background()
	auth, repo := newAuthFixture(t)
	repo.fail = true

	_, err := auth.Login(ctx, "alice", "correct")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
