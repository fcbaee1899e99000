package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the user API under /api/v1/users.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	users := r.Group("/api/v1/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/token", h.Refresh)
	}

	protected := r.Group("/api/v1/users")
	{
		protected.Use(h.AuthMiddleware())
		protected.POST("/logout", h.Logout)
		protected.GET("/get-current-user", h.GetCurrentUser)
		protected.PATCH("/change-password", h.ChangePassword)
		protected.PATCH("/update-user-details", h.UpdateUserDetails)
		protected.PATCH("/update-user-files", h.UpdateUserFiles)
		protected.GET("/get-user-channel-details/:username", h.GetUserChannelDetails)
		protected.POST("/subscribe", h.Subscribe)
		protected.GET("/watch-history", h.WatchHistory)
	}
}
