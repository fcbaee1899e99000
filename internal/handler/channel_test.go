package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/roshanls1997/chai-backend/internal/model"
)

// registerAndLogin sets up a user and returns their id plus the access cookie
// for authenticated requests.
func registerAndLogin(t *testing.T, env *testEnv, username, email string) (uuid.UUID, *http.Cookie) {
	t.Helper()
	_, resp := env.register(t, username, email)

	var user struct {
		ID uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &user))

	w, _ := env.login(t, email, "password123")
	access := findCookie(t, w, "accessToken")
	require.NotNil(t, access)
	return user.ID, access
}

func TestSubscribeAndChannelDetailsFlow(t *testing.T) {
	env := newTestEnv(t)
	_, accessA := registerAndLogin(t, env, "usera", "a@example.com")
	registerAndLogin(t, env, "userb", "b@example.com")

	payload, err := json.Marshal(map[string]string{"channel": "userb"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/subscribe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(accessA)
	w, _ := env.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/get-user-channel-details/userb", nil)
	req.AddCookie(accessA)
	w, resp := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)

	var details struct {
		UserName               string `json:"username"`
		SubscribersCount       int64  `json:"subscribersCount"`
		SubscribedChannelCount int64  `json:"subscribedChannelCount"`
		IsSubscribed           bool   `json:"isSubscribed"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &details))
	require.Equal(t, "userb", details.UserName)
	require.Equal(t, int64(1), details.SubscribersCount)
	require.Equal(t, int64(0), details.SubscribedChannelCount)
	require.True(t, details.IsSubscribed)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/get-user-channel-details/nobody", nil)
	req.AddCookie(accessA)
	w, _ = env.do(t, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribe_UnknownChannel(t *testing.T) {
	env := newTestEnv(t)
	_, access := registerAndLogin(t, env, "usera", "a@example.com")

	payload, err := json.Marshal(map[string]string{"channel": "nobody"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/subscribe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(access)
	w, _ := env.do(t, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserFiles_UnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	_, access := registerAndLogin(t, env, "usera", "a@example.com")

	body, contentType := multipartBody(t, nil, map[string]string{"file": "pic.png"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/update-user-files?type=password", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(access)

	w, _ := env.do(t, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateUserFiles_Avatar(t *testing.T) {
	env := newTestEnv(t)
	userID, access := registerAndLogin(t, env, "usera", "a@example.com")

	before, err := env.store.GetUserByID(context.Background(), userID)
	require.NoError(t, err)

	body, contentType := multipartBody(t, nil, map[string]string{"file": "pic.png"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/update-user-files?type=avatar", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(access)

	w, resp := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Avatar string `json:"avatar"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	require.Contains(t, user.Avatar, "https://cdn.example.com/avatars/")
	require.NotEqual(t, before.Avatar, user.Avatar)

	// The replaced avatar is removed from the media host.
	require.Equal(t, []string{before.Avatar}, env.uploader.deleted)
}

func TestWatchHistoryEndpoint(t *testing.T) {
	env := newTestEnv(t)
	viewerID, access := registerAndLogin(t, env, "viewer", "v@example.com")
	ownerID, _ := registerAndLogin(t, env, "owner", "o@example.com")

	// Empty history serializes as an empty array, not null.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/watch-history", nil)
	req.AddCookie(access)
	w, resp := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", string(resp.Data))

	ctx := context.Background()
	video, err := env.store.CreateVideo(ctx, model.Video{OwnerID: ownerID, Title: "first"})
	require.NoError(t, err)
	require.NoError(t, env.store.AddWatchHistory(ctx, viewerID, video.ID))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/watch-history", nil)
	req.AddCookie(access)
	w, resp = env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)

	var history []struct {
		Title string `json:"title"`
		Owner struct {
			UserName string `json:"username"`
		} `json:"owner"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	require.Len(t, history, 1)
	require.Equal(t, "first", history[0].Title)
	require.Equal(t, "owner", history[0].Owner.UserName)
}
