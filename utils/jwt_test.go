package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-1", "john@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestExtractIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", "john@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractIDFromToken_Garbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-token")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	first := HashToken("session-token")
	second := HashToken("session-token")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, HashToken("other-token"))
}
