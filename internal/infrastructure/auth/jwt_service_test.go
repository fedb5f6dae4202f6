package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	token, err := svc.GenerateToken("sid-1", "alice")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestTokenRejected(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	expired := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})

	foreign, err := other.GenerateToken("sid-1", "alice")
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	old, err := expired.GenerateToken("sid-1", "alice")
	require.NoError(t, err)
	_, err = svc.ValidateToken(old)
	assert.Error(t, err)

	noSession, err := svc.GenerateToken("", "alice")
	require.NoError(t, err)
	_, err = svc.ValidateToken(noSession)
	assert.Error(t, err)

	_, err = svc.ValidateToken("garbage")
	assert.Error(t, err)
}
