// Package memory provides an in-memory Store implementation. It backs the
// test suites and mirrors the Postgres semantics: unique username/email,
// compare-and-swap refresh-token rotation, read models computed per call.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

type watchEntry struct {
	videoID   uuid.UUID
	watchedAt time.Time
}

type Store struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]model.User
	subscriptions []model.Subscription
	videos        map[uuid.UUID]model.Video
	history       map[uuid.UUID][]watchEntry
}

func NewStore() *Store {
	return &Store{
		users:   make(map[uuid.UUID]model.User),
		videos:  make(map[uuid.UUID]model.Video),
		history: make(map[uuid.UUID][]watchEntry),
	}
}

func (s *Store) CreateUser(_ context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.UserName == user.UserName || strings.EqualFold(existing.Email, user.Email) {
			return nil, shared.ErrConflict
		}
	}
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByLogin(_ context.Context, identifier string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == identifier || u.UserName == identifier {
			u := u
			return &u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.UserName == username {
			u := u
			return &u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) update(id uuid.UUID, fn func(*model.User)) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	fn(&u)
	u.UpdatedAt = time.Now()
	s.users[id] = u
	return &u, nil
}

func (s *Store) UpdateRefreshToken(_ context.Context, id uuid.UUID, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.update(id, func(u *model.User) { u.RefreshToken = refreshToken })
	return err
}

func (s *Store) RotateRefreshToken(_ context.Context, id uuid.UUID, oldToken, newToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return shared.ErrNotFound
	}
	if u.RefreshToken == "" || u.RefreshToken != oldToken {
		return shared.ErrTokenReused
	}
	_, err := s.update(id, func(u *model.User) { u.RefreshToken = newToken })
	return err
}

func (s *Store) ClearRefreshToken(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.update(id, func(u *model.User) { u.RefreshToken = "" })
	return err
}

func (s *Store) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.update(id, func(u *model.User) { u.Password = passwordHash })
	return err
}

func (s *Store) UpdateUserDetails(_ context.Context, id uuid.UUID, fullname, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for otherID, other := range s.users {
		if otherID != id && strings.EqualFold(other.Email, email) {
			return nil, shared.ErrConflict
		}
	}
	return s.update(id, func(u *model.User) {
		u.FullName = fullname
		u.Email = email
	})
}

func (s *Store) UpdateAvatar(_ context.Context, id uuid.UUID, url string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(id, func(u *model.User) { u.Avatar = url })
}

func (s *Store) UpdateCoverImage(_ context.Context, id uuid.UUID, url string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(id, func(u *model.User) { u.CoverImage = url })
}

func (s *Store) CreateSubscription(_ context.Context, subscriberID, channelID uuid.UUID) (*model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := model.Subscription{
		ID:           uuid.New(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	}
	s.subscriptions = append(s.subscriptions, sub)
	return &sub, nil
}

func (s *Store) GetChannelDetails(_ context.Context, username string, viewerID uuid.UUID) (*model.ChannelDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var channel *model.User
	for _, u := range s.users {
		if u.UserName == username {
			u := u
			channel = &u
			break
		}
	}
	if channel == nil {
		return nil, shared.ErrNotFound
	}

	details := model.ChannelDetails{
		ID:         channel.ID,
		UserName:   channel.UserName,
		Email:      channel.Email,
		FullName:   channel.FullName,
		Avatar:     channel.Avatar,
		CoverImage: channel.CoverImage,
	}
	for _, sub := range s.subscriptions {
		if sub.ChannelID == channel.ID {
			details.SubscribersCount++
			if sub.SubscriberID == viewerID {
				details.IsSubscribed = true
			}
		}
		if sub.SubscriberID == channel.ID {
			details.SubscribedChannelCount++
		}
	}
	return &details, nil
}

func (s *Store) CreateVideo(_ context.Context, video model.Video) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video.ID = uuid.New()
	video.CreatedAt = time.Now()
	s.videos[video.ID] = video
	return &video, nil
}

func (s *Store) AddWatchHistory(_ context.Context, userID, videoID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return shared.ErrNotFound
	}
	if _, ok := s.videos[videoID]; !ok {
		return shared.ErrNotFound
	}
	entries := s.history[userID]
	for i := range entries {
		if entries[i].videoID == videoID {
			entries[i].watchedAt = time.Now()
			return nil
		}
	}
	s.history[userID] = append(entries, watchEntry{videoID: videoID, watchedAt: time.Now()})
	return nil
}

func (s *Store) GetWatchHistory(_ context.Context, userID uuid.UUID) ([]model.WatchHistoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := append([]watchEntry(nil), s.history[userID]...)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].watchedAt.After(entries[j].watchedAt)
	})

	var history []model.WatchHistoryItem
	for _, e := range entries {
		v, ok := s.videos[e.videoID]
		if !ok {
			continue
		}
		owner := s.users[v.OwnerID]
		history = append(history, model.WatchHistoryItem{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Thumbnail:   v.Thumbnail,
			Duration:    v.Duration,
			Views:       v.Views,
			WatchedAt:   e.watchedAt,
			Owner: model.VideoOwner{
				ID:       owner.ID,
				UserName: owner.UserName,
				FullName: owner.FullName,
				Avatar:   owner.Avatar,
			},
		})
	}
	return history, nil
}
