// Package handler contains the gin HTTP layer: request decoding, the auth
// middleware and the single translation point from service errors to the
// uniform response envelope.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/service"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

type Handler struct {
	users    *service.UserService
	channels *service.ChannelService
	uploads  *service.UploadService
	log      *zap.SugaredLogger
}

func NewHandler(users *service.UserService, channels *service.ChannelService, uploads *service.UploadService, log *zap.SugaredLogger) *Handler {
	return &Handler{users: users, channels: channels, uploads: uploads, log: log}
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, model.APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// respondError is the single translation point from the error taxonomy to
// HTTP statuses. Internal errors are logged and not echoed to the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		h.log.Errorw("request failed", "path", c.FullPath(), "error", err)
		err = errors.New("internal server error")
	}
	c.AbortWithStatusJSON(status, model.APIError{
		StatusCode: status,
		Error:      err.Error(),
		Success:    false,
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, shared.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, shared.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, shared.ErrUnauthenticated),
		errors.Is(err, shared.ErrInvalidToken),
		errors.Is(err, shared.ErrTokenReused):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
