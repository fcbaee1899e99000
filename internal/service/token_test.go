package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/roshanls1997/chai-backend/internal/shared"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
}

func TestIssueTokenPair_DistinctSecrets(t *testing.T) {
	cfg := testTokenConfig()
	userID := uuid.New()

	access, refresh, err := cfg.IssueTokenPair(userID)
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	gotID, err := cfg.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, userID, gotID)

	gotID, err = cfg.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, userID, gotID)

	// Tokens must not verify under each other's secret.
	_, err = cfg.ParseAccessToken(refresh)
	require.ErrorIs(t, err, shared.ErrInvalidToken)
	_, err = cfg.ParseRefreshToken(access)
	require.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestIssueTokenPair_DistinctWithinSameInstant(t *testing.T) {
	cfg := testTokenConfig()
	userID := uuid.New()

	// Back-to-back issuance lands inside the same second, so second-granularity
	// iat/exp alone would produce identical tokens. Each token must still be
	// unique or rotation cannot revoke the previous one.
	_, refresh1, err := cfg.IssueTokenPair(userID)
	require.NoError(t, err)
	_, refresh2, err := cfg.IssueTokenPair(userID)
	require.NoError(t, err)
	require.NotEqual(t, refresh1, refresh2)

	access1, _, err := cfg.IssueTokenPair(userID)
	require.NoError(t, err)
	access2, _, err := cfg.IssueTokenPair(userID)
	require.NoError(t, err)
	require.NotEqual(t, access1, access2)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testTokenConfig()
	token, err := signToken(uuid.New(), cfg.AccessSecret, -time.Minute)
	require.NoError(t, err)

	_, err = cfg.ParseAccessToken(token)
	require.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestParseToken_Tampered(t *testing.T) {
	cfg := testTokenConfig()
	token, err := signToken(uuid.New(), cfg.AccessSecret, time.Minute)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = cfg.ParseAccessToken(tampered)
	require.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	cfg := testTokenConfig()
	token, err := signToken(uuid.New(), []byte("some-other-secret"), time.Minute)
	require.NoError(t, err)

	_, err = cfg.ParseAccessToken(token)
	require.ErrorIs(t, err, shared.ErrInvalidToken)
}
