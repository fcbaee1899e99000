package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/service"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

// GetCurrentUser godoc
// @Summary Return the authenticated user
// @Success 200 {object} model.APIResponse
// @Router /get-current-user [get]
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}
	respond(c, http.StatusOK, user, "user details")
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Accept json
// @Param input body model.ChangePasswordRequest true "current and new password"
// @Success 200 {object} model.APIResponse
// @Router /change-password [patch]
func (h *Handler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}
	var input model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, shared.ErrValidation)
		return
	}
	if err := h.users.ChangePassword(c.Request.Context(), user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, struct{}{}, "password changed")
}

// UpdateUserDetails godoc
// @Summary Update fullname and email
// @Accept json
// @Param input body model.UpdateUserDetailsRequest true "new details"
// @Success 200 {object} model.APIResponse
// @Router /update-user-details [patch]
func (h *Handler) UpdateUserDetails(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}
	var input model.UpdateUserDetailsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, shared.ErrValidation)
		return
	}
	updated, err := h.users.UpdateDetails(c.Request.Context(), user.ID, input.FullName, input.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated, "user details updated")
}

// UpdateUserFiles godoc
// @Summary Replace the avatar or the cover image
// @Accept mpfd
// @Param type query string true "avatar or coverImage"
// @Param file formData file true "image file"
// @Success 200 {object} model.APIResponse
// @Router /update-user-files [patch]
func (h *Handler) UpdateUserFiles(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}

	// The target field is a closed enum, checked before anything is uploaded.
	fileType := service.UserFileType(c.Query("type"))
	var keyPrefix, oldURL string
	switch fileType {
	case service.UserFileAvatar:
		keyPrefix, oldURL = "avatars", user.Avatar
	case service.UserFileCoverImage:
		keyPrefix, oldURL = "covers", user.CoverImage
	default:
		h.respondError(c, shared.ErrValidation)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, shared.ErrValidation)
		return
	}
	url, err := h.uploadFormFile(c, fh, keyPrefix)
	if err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.users.UpdateFile(c.Request.Context(), user.ID, fileType, url)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// The superseded object is garbage once the new URL is stored. Its
	// removal is best effort and never fails the request.
	if err := h.uploads.RemoveFile(c.Request.Context(), oldURL); err != nil {
		h.log.Warnw("failed to delete superseded file", "url", oldURL, "error", err)
	}

	respond(c, http.StatusOK, updated, string(fileType)+" uploaded")
}
