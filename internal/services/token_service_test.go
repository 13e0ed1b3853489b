package services_test

import (
	"strings"
	"testing"
	"time"

	"staffdir/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService_MissingSecret(t *testing.T) {
	_, err := services.NewTokenService("", time.Hour)
	assert.ErrorIs(t, err, services.ErrMissingSecret)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := newTokenService(t)

	token, err := tokens.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, int64(3*time.Hour/time.Second), claims.ExpiresAt-claims.IssuedAt)
}

func TestTokenService_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	tokens, err := services.NewTokenService(testJWTSecret, 0, services.WithClock(clock))
	require.NoError(t, err)

	token, err := tokens.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	now = now.Add(3*time.Hour - time.Second)
	_, err = tokens.Verify(token)
	assert.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, services.ErrTokenExpired)
}

func TestTokenService_RejectsTampering(t *testing.T) {
	tokens := newTokenService(t)
	token, err := tokens.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	mid := len(sig) / 2
	if sig[mid] == 'a' {
		sig[mid] = 'b'
	} else {
		sig[mid] = 'a'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)

	// Payload swapped from another user's token.
	other, err := tokens.Issue("user-999", "z@x.com")
	require.NoError(t, err)
	swapped := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]
	_, err = tokens.Verify(swapped)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	tokens := newTokenService(t)

	otherSecret, err := services.NewTokenService("another_secret", 0)
	require.NoError(t, err)
	foreign, err := otherSecret.Issue("user-123", "a@x.com")
	require.NoError(t, err)
	_, err = tokens.Verify(foreign)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)

	// Right secret, wrong algorithm.
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, services.Claims{
		UserID:         "user-123",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = tokens.Verify(hs512)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)

	// No subject.
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = tokens.Verify(anonymous)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)

	_, err = tokens.Verify("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
	_, err = tokens.Verify("")
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
}
