package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, err := svc.Generate("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", 30*time.Minute)
	verifier := NewTokenService("other-secret", 30*time.Minute)

	token, err := issuer.Generate("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbageRejected(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("login:alice@example.com"), "attempt %d should pass", i+1)
	}
	assert.False(t, rl.Allow("login:alice@example.com"))

	// Other keys keep their own window.
	assert.True(t, rl.Allow("login:bob@example.com"))
}

func TestRateLimiterRecovers(t *testing.T) {
	rl := NewRateLimiter(50*time.Millisecond, 1)

	assert.True(t, rl.Allow("key"))
	assert.False(t, rl.Allow("key"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("key"))
}
