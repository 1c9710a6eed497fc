package auth

import (
	"testing"

	"newsroom_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLMinutes = 15
	cfg.JWT.RefreshTTLDays = 60
	config.AppConfig = cfg
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateAccessToken("alice", "writer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "writer", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateRefreshToken("bob")
	require.NoError(t, err)

	claims, err := ParseToken(token, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Subject)
	assert.Empty(t, claims.Role)
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	setupJWTConfig(t)

	refresh, err := GenerateRefreshToken("alice")
	require.NoError(t, err)

	_, err = ParseToken(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	access, err := GenerateAccessToken("alice", "writer")
	require.NoError(t, err)

	_, err = ParseToken(access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupJWTConfig(t)

	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := ParseToken(token, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupJWTConfig(t)
	token, err := GenerateAccessToken("alice", "writer")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "another-secret"
	_, err = ParseToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsEmptySubject(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateAccessToken("", "writer")
	require.NoError(t, err)

	_, err = ParseToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
