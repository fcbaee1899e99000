package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

func (s *Storage) CreateSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (*model.Subscription, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO subscriptions (subscriber_id, channel_id)
		 VALUES ($1, $2)
		 RETURNING id, subscriber_id, channel_id, created_at`,
		subscriberID, channelID)

	var sub model.Subscription
	if err := row.Scan(&sub.ID, &sub.SubscriberID, &sub.ChannelID, &sub.CreatedAt); err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetChannelDetails computes the channel read model in a single query:
// subscriber count, subscribed-channel count and a membership test for the
// viewing user.
func (s *Storage) GetChannelDetails(ctx context.Context, username string, viewerID uuid.UUID) (*model.ChannelDetails, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT u.id, u.username, u.email, u.fullname, u.avatar, u.cover_image,
		(SELECT COUNT(*) FROM subscriptions WHERE channel_id = u.id) AS subscribers_count,
		(SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = u.id) AS subscribed_channel_count,
		EXISTS(SELECT 1 FROM subscriptions WHERE channel_id = u.id AND subscriber_id = $2) AS is_subscribed
		FROM users u
		WHERE u.username = $1
		`, username, viewerID)

	var d model.ChannelDetails
	err := row.Scan(&d.ID, &d.UserName, &d.Email, &d.FullName, &d.Avatar, &d.CoverImage,
		&d.SubscribersCount, &d.SubscribedChannelCount, &d.IsSubscribed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *Storage) CreateVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO videos (owner_id, title, description, thumbnail, duration, views)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		video.OwnerID, video.Title, video.Description, video.Thumbnail, video.Duration, video.Views)
	if err := row.Scan(&video.ID, &video.CreatedAt); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *Storage) AddWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	_, err := s.DB.Exec(ctx,
		`INSERT INTO watch_history (user_id, video_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = now()`,
		userID, videoID)
	return err
}

// GetWatchHistory resolves the user's watch history into video + owner
// summaries, most recently watched first.
func (s *Storage) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]model.WatchHistoryItem, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT v.id, v.title, v.description, v.thumbnail, v.duration, v.views, wh.watched_at,
		       o.id, o.username, o.fullname, o.avatar
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users o ON o.id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.watched_at DESC
		`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.WatchHistoryItem
	for rows.Next() {
		var item model.WatchHistoryItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Thumbnail,
			&item.Duration, &item.Views, &item.WatchedAt,
			&item.Owner.ID, &item.Owner.UserName, &item.Owner.FullName, &item.Owner.Avatar); err != nil {
			return nil, err
		}
		history = append(history, item)
	}
	return history, rows.Err()
}
