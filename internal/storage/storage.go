// Package storage defines the persistence contract shared by the Postgres
// implementation and the in-memory implementation used in tests.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/roshanls1997/chai-backend/internal/model"
)

// Store is the persistence boundary of the backend.
//
// Refresh-token writes come in three distinct flavors on purpose:
// UpdateRefreshToken overwrites unconditionally (login revokes any prior
// session), RotateRefreshToken is a compare-and-swap against the previously
// stored value (refresh), and ClearRefreshToken removes it (logout).
type Store interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByLogin(ctx context.Context, identifier string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error
	RotateRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) error
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateUserDetails(ctx context.Context, id uuid.UUID, fullname, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) (*model.User, error)

	CreateSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (*model.Subscription, error)
	GetChannelDetails(ctx context.Context, username string, viewerID uuid.UUID) (*model.ChannelDetails, error)

	CreateVideo(ctx context.Context, video model.Video) (*model.Video, error)
	AddWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
	GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]model.WatchHistoryItem, error)
}
