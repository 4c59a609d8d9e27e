package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("test-signing-key")

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(signingKey, "user-123", "test-agent")
	require.NoError(t, err)

	userID, err := ParseToken(signingKey, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestResetTokenIsNotASessionToken(t *testing.T) {
	token, err := GenerateResetToken(signingKey, "user-123")
	require.NoError(t, err)

	_, err = ParseToken(signingKey, token)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	userID, err := ParseResetToken(signingKey, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, err := GenerateToken(signingKey, "user-123", "")
	require.NoError(t, err)

	_, err = ParseToken([]byte("another-key"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseToken(signingKey, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
