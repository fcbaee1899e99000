package handler

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/service"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

const (
	cookieAccessToken  = "accessToken"
	cookieRefreshToken = "refreshToken"

	userContextKey = "currentUser"
)

// currentUser retrieves the identity attached by AuthMiddleware.
func currentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// tokenFromRequest extracts the access token; the cookie takes precedence
// over the Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if v, err := c.Cookie(cookieAccessToken); err == nil && v != "" {
		return v
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// AuthMiddleware gates every protected route: it resolves the access token
// into an identity and attaches it to the request context.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			h.respondError(c, shared.ErrUnauthenticated)
			return
		}
		user, err := h.users.GetCurrentUser(c.Request.Context(), token)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.Set(userContextKey, *user)
		c.Next()
	}
}

func (h *Handler) setAuthCookies(c *gin.Context, access, refresh string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cookieAccessToken, access, int(h.users.Tokens.AccessTTL.Seconds()), "/", "", true, true)
	c.SetCookie(cookieRefreshToken, refresh, int(h.users.Tokens.RefreshTTL.Seconds()), "/", "", true, true)
}

func (h *Handler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cookieAccessToken, "", -1, "/", "", true, true)
	c.SetCookie(cookieRefreshToken, "", -1, "/", "", true, true)
}

// uploadFormFile spools a multipart file to a temp path and hands it to the
// upload service, which removes the temp file again.
func (h *Handler) uploadFormFile(c *gin.Context, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, tmpPath); err != nil {
		return "", err
	}
	return h.uploads.UploadLocalFile(c.Request.Context(), tmpPath, keyPrefix)
}

// Register godoc
// @Summary Register a new user
// @Accept mpfd
// @Param avatar formData file true "avatar image"
// @Param coverImage formData file false "cover image"
// @Success 201 {object} model.APIResponse
// @Failure 409 {object} model.APIError
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	input := service.RegisterInput{
		UserName: c.PostForm("username"),
		Email:    c.PostForm("email"),
		FullName: c.PostForm("fullname"),
		Password: c.PostForm("password"),
	}

	// Field and uniqueness checks run before anything touches the media host,
	// so a rejected registration uploads nothing.
	if err := h.users.CheckRegistration(c.Request.Context(), input); err != nil {
		h.respondError(c, err)
		return
	}
	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		h.respondError(c, shared.ErrValidation)
		return
	}

	input.Avatar, err = h.uploadFormFile(c, avatarFile, "avatars")
	if err != nil {
		h.respondError(c, err)
		return
	}
	if coverFile, err := c.FormFile("coverImage"); err == nil {
		input.CoverImage, err = h.uploadFormFile(c, coverFile, "covers")
		if err != nil {
			h.respondError(c, err)
			return
		}
	}

	user, err := h.users.Register(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, user, "user registered successfully")
}

// Login godoc
// @Summary Log in with email or username
// @Accept json
// @Param input body model.LoginRequest true "credentials"
// @Success 200 {object} model.APIResponse
// @Failure 400 {object} model.APIError
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var input model.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, shared.ErrValidation)
		return
	}
	identifier := input.Email
	if identifier == "" {
		identifier = input.UserName
	}

	user, access, refresh, err := h.users.Login(c.Request.Context(), identifier, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setAuthCookies(c, access, refresh)
	respond(c, http.StatusOK, model.LoginResponse{
		User:         *user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, "user logged in")
}

// Logout godoc
// @Summary Log out the current user
// @Success 200 {object} model.APIResponse
// @Router /logout [post]
func (h *Handler) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}
	if err := h.users.Logout(c.Request.Context(), user.ID); err != nil {
		h.respondError(c, err)
		return
	}
	h.clearAuthCookies(c)
	respond(c, http.StatusOK, struct{}{}, "user logged out")
}

// Refresh godoc
// @Summary Rotate the refresh token
// @Accept json
// @Param input body model.RefreshRequest false "refresh token, if not sent as a cookie"
// @Success 200 {object} model.APIResponse
// @Failure 401 {object} model.APIError
// @Router /token [post]
func (h *Handler) Refresh(c *gin.Context) {
	// The body wins over the cookie so API clients can refresh explicitly.
	var input model.RefreshRequest
	_ = c.ShouldBindJSON(&input)
	presented := input.RefreshToken
	if presented == "" {
		presented, _ = c.Cookie(cookieRefreshToken)
	}

	access, refresh, err := h.users.Refresh(c.Request.Context(), presented)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setAuthCookies(c, access, refresh)
	respond(c, http.StatusOK, model.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, "tokens refreshed")
}
