package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

// GetUserChannelDetails godoc
// @Summary Channel details for a username, as seen by the current user
// @Param username path string true "channel username"
// @Success 200 {object} model.APIResponse
// @Failure 404 {object} model.APIError
// @Router /get-user-channel-details/{username} [get]
func (h *Handler) GetUserChannelDetails(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}
	details, err := h.channels.GetChannelDetails(c.Request.Context(), c.Param("username"), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, details, "channel details")
}

// Subscribe godoc
// @Summary Subscribe the current user to a channel
// @Accept json
// @Param input body model.SubscribeRequest true "channel username"
// @Success 201 {object} model.APIResponse
// @Router /subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}
	var input model.SubscribeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, shared.ErrValidation)
		return
	}
	sub, err := h.channels.Subscribe(c.Request.Context(), user.ID, input.Channel)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, sub, "subscribed successfully")
}

// WatchHistory godoc
// @Summary Watch history of the current user with video owner summaries
// @Success 200 {object} model.APIResponse
// @Router /watch-history [get]
func (h *Handler) WatchHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.respondError(c, shared.ErrUnauthenticated)
		return
	}
	history, err := h.channels.GetWatchHistory(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if history == nil {
		history = []model.WatchHistoryItem{}
	}
	respond(c, http.StatusOK, history, "watch history fetched successfully")
}
