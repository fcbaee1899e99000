package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
	"github.com/roshanls1997/chai-backend/internal/storage"
)

type ChannelService struct {
	Store storage.Store
}

func NewChannelService(store storage.Store) *ChannelService {
	return &ChannelService{Store: store}
}

// Subscribe resolves the channel by username and records the subscription.
// Duplicate subscriptions are allowed.
func (s *ChannelService) Subscribe(ctx context.Context, subscriberID uuid.UUID, channelUsername string) (*model.Subscription, error) {
	channelUsername = strings.TrimSpace(channelUsername)
	if channelUsername == "" {
		return nil, shared.ErrValidation
	}
	channel, err := s.Store.GetUserByUsername(ctx, strings.ToLower(channelUsername))
	if err != nil {
		return nil, err
	}
	return s.Store.CreateSubscription(ctx, subscriberID, channel.ID)
}

func (s *ChannelService) GetChannelDetails(ctx context.Context, username string, viewerID uuid.UUID) (*model.ChannelDetails, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.ErrValidation
	}
	return s.Store.GetChannelDetails(ctx, strings.ToLower(username), viewerID)
}

func (s *ChannelService) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]model.WatchHistoryItem, error) {
	return s.Store.GetWatchHistory(ctx, userID)
}
