package shared

import "errors"

// Sentinel errors for the whole backend. Handlers translate these into the
// uniform error envelope; services and storage return them (possibly wrapped).
var (
	ErrValidation         = errors.New("required field is missing or empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("user already exists with email or username")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenReused        = errors.New("refresh token already used")
	ErrNotFound           = errors.New("not found")
)
