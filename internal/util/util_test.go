package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "65%", FormatPercent(65))
	assert.Equal(t, "63%", FormatPercent(62.5))
	assert.Equal(t, "33%", FormatPercent(100.0/3))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-4))
	assert.Equal(t, 42.0, ClampPercent(42))
	assert.Equal(t, 100.0, ClampPercent(130))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(7, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(7, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
