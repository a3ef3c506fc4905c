package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	claims := AccessClaims{
		UserID:      "665f1c9aa3b2c4d5e6f70812",
		Email:       "dev@example.com",
		TypeAccount: "freeUser",
	}
	token, err := NewAccessToken("secret", claims, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseAccessToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", AccessClaims{UserID: "u1", Email: "a@b.c", TypeAccount: "freeUser"}, time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("other", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := NewAccessToken("secret", AccessClaims{UserID: "u1", Email: "a@b.c", TypeAccount: "freeUser"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("secret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewRefreshTokenUnique(t *testing.T) {
	a := NewRefreshToken()
	b := NewRefreshToken()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
