package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, claims, err := m.GenerateToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), parsed.UserID)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.Equal(t, time.Hour, m.TTL())
	assert.WithinDuration(t, parsed.IssuedAt.Add(m.TTL()), parsed.ExpiresAt.Time, time.Second)
}

func TestManager_ParseRejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	valid, _, err := m.GenerateToken(1)
	require.NoError(t, err)

	expired := NewManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.GenerateToken(1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		m     *Manager
	}{
		{"wrong secret", valid, NewManager("other", time.Hour)},
		{"expired", old, m},
		{"garbage", "not-a-token", m},
		{"empty", "", m},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.ParseToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSignStreamToken(t *testing.T) {
	signed, err := SignStreamToken("stream-secret", "7")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("stream-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "7", claims["user_id"])

	_, err = SignStreamToken("", "7")
	assert.Error(t, err)
}
