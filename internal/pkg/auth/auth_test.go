package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := NewSessionTokenService(SessionTokenConfig{SecretKey: "secret", TokenIssuer: "smartmatch"})
	now := time.Now()

	token, err := svc.Issue("sess-1", 42, now, now.Add(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.ID)

	accountID, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)
}

func TestSessionToken_Rejections(t *testing.T) {
	svc := NewSessionTokenService(SessionTokenConfig{SecretKey: "secret", TokenIssuer: "smartmatch"})
	other := NewSessionTokenService(SessionTokenConfig{SecretKey: "other", TokenIssuer: "smartmatch"})
	now := time.Now()

	expired, err := svc.Issue("sess-1", 1, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = svc.Parse(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	forged, err := other.Issue("sess-1", 1, now, now.Add(time.Hour))
	require.NoError(t, err)
	_, err = svc.Parse(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Parse("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = svc.Issue("", 1, now, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", token)

	token, err = ExtractBearerToken("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", token)

	_, err = ExtractBearerToken("Basic dXNlcg==")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
