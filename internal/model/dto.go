package model

// APIResponse is the uniform success envelope for every endpoint.
type APIResponse struct {
	StatusCode int    `json:"statusCode" example:"200"`
	Data       any    `json:"data"`
	Message    string `json:"message" example:"ok"`
	Success    bool   `json:"success" example:"true"`
}

// APIError is the uniform error envelope.
type APIError struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Error      string `json:"error" example:"invalid token"`
	Success    bool   `json:"success" example:"false"`
}

// LoginRequest accepts either email or username as the identifier.
type LoginRequest struct {
	Email    string `json:"email" example:"user1@example.com"`
	UserName string `json:"username" example:"user1"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest carries the refresh token when it is not sent as a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" example:"password123"`
	NewPassword     string `json:"newPassword" example:"password456"`
}

type UpdateUserDetailsRequest struct {
	FullName string `json:"fullname" example:"User One"`
	Email    string `json:"email" example:"user1@example.com"`
}

type SubscribeRequest struct {
	Channel string `json:"channel" example:"user2"`
}
