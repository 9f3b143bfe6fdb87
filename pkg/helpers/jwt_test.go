package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)

	token, exp, err := m.GenerateAccessToken("user-1", "sid-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 2*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestJWTRejects(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)

	expired := NewJWTManager("secret", -time.Minute)
	token, _, err := expired.GenerateAccessToken("user-1", "")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	anon, _, err := m.GenerateAccessToken("", "")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(anon)
	assert.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.ParseAccessToken(none)
	assert.Error(t, err)
}
