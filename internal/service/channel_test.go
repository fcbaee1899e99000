package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
	"github.com/roshanls1997/chai-backend/internal/storage/memory"
)

func newChannelFixture(t *testing.T) (*ChannelService, *UserService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewChannelService(store), NewUserService(store, testTokenConfig()), store
}

func TestSubscribe(t *testing.T) {
	channels, users, _ := newChannelFixture(t)
	ctx := context.Background()

	a := registerTestUser(t, users, "usera", "a@example.com")
	registerTestUser(t, users, "userb", "b@example.com")

	_, err := channels.Subscribe(ctx, a.ID, "  ")
	require.ErrorIs(t, err, shared.ErrValidation)

	_, err = channels.Subscribe(ctx, a.ID, "nobody")
	require.ErrorIs(t, err, shared.ErrNotFound)

	sub, err := channels.Subscribe(ctx, a.ID, "UserB")
	require.NoError(t, err)
	require.Equal(t, a.ID, sub.SubscriberID)
}

func TestChannelDetails(t *testing.T) {
	channels, users, _ := newChannelFixture(t)
	ctx := context.Background()

	a := registerTestUser(t, users, "usera", "a@example.com")
	b := registerTestUser(t, users, "userb", "b@example.com")

	_, err := channels.Subscribe(ctx, a.ID, "userb")
	require.NoError(t, err)

	details, err := channels.GetChannelDetails(ctx, "userb", a.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), details.SubscribersCount)
	require.Equal(t, int64(0), details.SubscribedChannelCount)
	require.True(t, details.IsSubscribed)

	// The same read twice with no intervening writes is identical.
	again, err := channels.GetChannelDetails(ctx, "userb", a.ID)
	require.NoError(t, err)
	require.Equal(t, details, again)

	// Another viewer is not subscribed.
	asB, err := channels.GetChannelDetails(ctx, "userb", b.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), asB.SubscribersCount)
	require.False(t, asB.IsSubscribed)

	// A subscribes to one channel.
	asViewerOfA, err := channels.GetChannelDetails(ctx, "usera", b.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), asViewerOfA.SubscribersCount)
	require.Equal(t, int64(1), asViewerOfA.SubscribedChannelCount)

	_, err = channels.GetChannelDetails(ctx, "nobody", a.ID)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestWatchHistory(t *testing.T) {
	channels, users, store := newChannelFixture(t)
	ctx := context.Background()

	viewer := registerTestUser(t, users, "viewer", "v@example.com")
	owner := registerTestUser(t, users, "owner", "o@example.com")

	v1, err := store.CreateVideo(ctx, model.Video{OwnerID: owner.ID, Title: "first"})
	require.NoError(t, err)
	v2, err := store.CreateVideo(ctx, model.Video{OwnerID: owner.ID, Title: "second"})
	require.NoError(t, err)

	require.NoError(t, store.AddWatchHistory(ctx, viewer.ID, v1.ID))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, store.AddWatchHistory(ctx, viewer.ID, v2.ID))

	history, err := channels.GetWatchHistory(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Most recently watched first, with the owner projection resolved.
	require.Equal(t, "second", history[0].Title)
	require.Equal(t, "first", history[1].Title)
	require.Equal(t, "owner", history[0].Owner.UserName)
	require.Equal(t, owner.ID, history[0].Owner.ID)

	// Re-watching bumps the entry to the front instead of duplicating it.
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, store.AddWatchHistory(ctx, viewer.ID, v1.ID))
	history, err = channels.GetWatchHistory(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "first", history[0].Title)
}
