package service

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/roshanls1997/chai-backend/internal/shared"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims carries the standard claims plus the user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TokenConfig holds the two independent signing secrets and lifetimes.
// Access tokens are short-lived and verified by signature only; refresh
// tokens are long-lived and additionally checked against stored state.
type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func TokenConfigFromEnv() TokenConfig {
	cfg := TokenConfig{
		AccessSecret:  []byte(os.Getenv("ACCESS_TOKEN_SECRET")),
		RefreshSecret: []byte(os.Getenv("REFRESH_TOKEN_SECRET")),
		AccessTTL:     defaultAccessTokenTTL,
		RefreshTTL:    defaultRefreshTokenTTL,
	}
	if d, err := time.ParseDuration(os.Getenv("ACCESS_TOKEN_TTL")); err == nil {
		cfg.AccessTTL = d
	}
	if d, err := time.ParseDuration(os.Getenv("REFRESH_TOKEN_TTL")); err == nil {
		cfg.RefreshTTL = d
	}
	return cfg
}

func signToken(userID uuid.UUID, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti makes every issued token distinct. Without it two
			// tokens minted within the same second would be byte-identical
			// and rotation could hand back the token it was meant to revoke.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID.String(),
	})
	return token.SignedString(secret)
}

func parseToken(tokenStr string, secret []byte) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, shared.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, shared.ErrInvalidToken
	}
	return userID, nil
}

// IssueTokenPair mints an access/refresh pair for the identity. Persisting
// the refresh token is the caller's job.
func (c TokenConfig) IssueTokenPair(userID uuid.UUID) (access, refresh string, err error) {
	access, err = signToken(userID, c.AccessSecret, c.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = signToken(userID, c.RefreshSecret, c.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (c TokenConfig) ParseAccessToken(tokenStr string) (uuid.UUID, error) {
	return parseToken(tokenStr, c.AccessSecret)
}

func (c TokenConfig) ParseRefreshToken(tokenStr string) (uuid.UUID, error) {
	return parseToken(tokenStr, c.RefreshSecret)
}
