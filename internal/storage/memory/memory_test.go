package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

func createUser(t *testing.T, s *Store, username, email string) *model.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), model.User{
		UserName: username,
		Email:    email,
		FullName: "Test User",
		Password: "hash",
		Avatar:   "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)
	return u
}

func TestCreateUser_Unique(t *testing.T) {
	s := NewStore()
	createUser(t, s, "user1", "u1@example.com")

	_, err := s.CreateUser(context.Background(), model.User{UserName: "user1", Email: "x@example.com"})
	require.ErrorIs(t, err, shared.ErrConflict)

	_, err = s.CreateUser(context.Background(), model.User{UserName: "user2", Email: "u1@example.com"})
	require.ErrorIs(t, err, shared.ErrConflict)
}

func TestRotateRefreshToken_CompareAndSwap(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := createUser(t, s, "user1", "u1@example.com")

	require.NoError(t, s.UpdateRefreshToken(ctx, u.ID, "token-1"))

	// Swap succeeds only against the currently stored value.
	require.NoError(t, s.RotateRefreshToken(ctx, u.ID, "token-1", "token-2"))
	require.ErrorIs(t, s.RotateRefreshToken(ctx, u.ID, "token-1", "token-3"), shared.ErrTokenReused)
	require.NoError(t, s.RotateRefreshToken(ctx, u.ID, "token-2", "token-3"))

	// After logout nothing matches, not even the last stored value.
	require.NoError(t, s.ClearRefreshToken(ctx, u.ID))
	require.ErrorIs(t, s.RotateRefreshToken(ctx, u.ID, "token-3", "token-4"), shared.ErrTokenReused)
	require.ErrorIs(t, s.RotateRefreshToken(ctx, u.ID, "", "token-4"), shared.ErrTokenReused)
}

func TestGetUserByLogin(t *testing.T) {
	s := NewStore()
	u := createUser(t, s, "user1", "u1@example.com")

	byEmail, err := s.GetUserByLogin(context.Background(), "u1@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byName, err := s.GetUserByLogin(context.Background(), "user1")
	require.NoError(t, err)
	require.Equal(t, u.ID, byName.ID)

	_, err = s.GetUserByLogin(context.Background(), "nobody")
	require.ErrorIs(t, err, shared.ErrNotFound)
}
