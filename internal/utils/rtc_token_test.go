package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRTCToken(t *testing.T) {
	token, err := BuildRTCToken("app", "cert", "session-abc", "mentor_1", "mentor", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseRTCToken(token, "cert")
	require.NoError(t, err)

	assert.Equal(t, "session-abc", claims.Channel)
	assert.Equal(t, "mentor_1", claims.UID)
	assert.Equal(t, "mentor", claims.Role)
	assert.Equal(t, "app", claims.Issuer)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestBuildRTCTokenRequiresCredentials(t *testing.T) {
	_, err := BuildRTCToken("", "", "session-abc", "mentor_1", "mentor", time.Hour)
	assert.ErrorIs(t, err, ErrRTCNotConfigured)

	_, err = BuildRTCToken("app", "cert", "", "mentor_1", "mentor", time.Hour)
	assert.Error(t, err)
}

func TestParseRTCTokenRejectsWrongSecret(t *testing.T) {
	token, err := BuildRTCToken("app", "cert", "session-abc", "mentor_1", "mentor", time.Hour)
	require.NoError(t, err)

	_, err = ParseRTCToken(token, "other-cert")
	assert.Error(t, err)
}

func TestParseRTCTokenRejectsExpired(t *testing.T) {
	token, err := BuildRTCToken("app", "cert", "session-abc", "mentor_1", "mentor", -time.Minute)
	require.NoError(t, err)

	_, err = ParseRTCToken(token, "cert")
	assert.Error(t, err)
}
