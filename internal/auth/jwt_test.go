package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-info/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: 7, Username: "alice", Email: "alice@example.com"}
}

func TestTokenRoundTrip(t *testing.T) {
	jwtService := NewJWTService("test-secret", time.Hour)

	token, err := jwtService.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestExpiredTokenRejected(t *testing.T) {
	jwtService := NewJWTService("test-secret", -time.Minute)

	token, err := jwtService.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	jwtService := NewJWTService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := jwtService.ValidateToken(token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	for _, header := range []string{"", "abc123", "Bearer ", "Basic abc123"} {
		_, err := ExtractTokenFromHeader(header)
		assert.Error(t, err, "header %q should be rejected", header)
	}
}
