package model

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OwnerID     uuid.UUID `db:"owner_id" json:"ownerId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Thumbnail   string    `db:"thumbnail" json:"thumbnail"`
	Duration    int       `db:"duration" json:"duration"`
	Views       int64     `db:"views" json:"views"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// VideoOwner is the projection of a video's owner used by the watch-history
// read model.
type VideoOwner struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"username"`
	FullName string    `json:"fullname"`
	Avatar   string    `json:"avatar"`
}

type WatchHistoryItem struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	Duration    int        `json:"duration"`
	Views       int64      `json:"views"`
	WatchedAt   time.Time  `json:"watchedAt"`
	Owner       VideoOwner `json:"owner"`
}

// ChannelDetails is the channel read model: the public user fields plus the
// computed subscription counters for a given viewer.
type ChannelDetails struct {
	ID                     uuid.UUID `json:"id"`
	UserName               string    `json:"username"`
	Email                  string    `json:"email"`
	FullName               string    `json:"fullname"`
	Avatar                 string    `json:"avatar"`
	CoverImage             string    `json:"coverImage"`
	SubscribersCount       int64     `json:"subscribersCount"`
	SubscribedChannelCount int64     `json:"subscribedChannelCount"`
	IsSubscribed           bool      `json:"isSubscribed"`
}
