package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roshanls1997/chai-backend/internal/service"
	"github.com/roshanls1997/chai-backend/internal/storage/memory"
)

// stubUploader stands in for the media host: it never touches the network,
// returns a deterministic URL per key prefix and records every call.
type stubUploader struct {
	uploads int
	deleted []string
}

func (s *stubUploader) Upload(_ context.Context, localPath, keyPrefix string) (string, error) {
	s.uploads++
	return "https://cdn.example.com/" + keyPrefix + "/" + filepath.Base(localPath), nil
}

func (s *stubUploader) Delete(_ context.Context, fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Error      string          `json:"error"`
}

type testEnv struct {
	router   *gin.Engine
	store    *memory.Store
	uploader *stubUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	tokens := service.TokenConfig{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
	uploader := &stubUploader{}
	users := service.NewUserService(store, tokens)
	channels := service.NewChannelService(store)
	uploads := service.NewUploadService(uploader)

	h := NewHandler(users, channels, uploads, zap.NewNop().Sugar())
	r := gin.New()
	h.RegisterRoutes(r)

	return &testEnv{router: r, store: store, uploader: uploader}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for field, filename := range files {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("file-content"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func (e *testEnv) register(t *testing.T, username, email string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	body, contentType := multipartBody(t,
		map[string]string{
			"username": username,
			"email":    email,
			"fullname": "Test User",
			"password": "password123",
		},
		map[string]string{"avatar": "avatar.png"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set("Content-Type", contentType)
	return e.do(t, req)
}

func (e *testEnv) login(t *testing.T, email, password string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return e.do(t, req)
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestErrorEnvelopeShape(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/get-current-user", nil)
	w, resp := env.do(t, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NotEmpty(t, resp.Error)
	require.Empty(t, resp.Message)
}

func TestSuccessEnvelopeShape(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.register(t, "user1", "u1@example.com")
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "user registered successfully", resp.Message)

	// Secret fields never appear in any response body.
	require.NotContains(t, w.Body.String(), `"password"`)
	require.NotContains(t, w.Body.String(), `"refreshToken"`)

	var user struct {
		UserName string `json:"username"`
		Avatar   string `json:"avatar"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	require.Equal(t, "user1", user.UserName)
	require.True(t, strings.HasPrefix(user.Avatar, "https://cdn.example.com/avatars/"))
}
