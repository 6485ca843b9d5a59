package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "Secret@123", hash)

	// bcrypt salts each hash, two calls never collide
	hash2, err := HashPassword("Secret@123")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	require.NoError(t, err)

	require.True(t, CheckPasswordHash("Secret@123", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
	require.False(t, CheckPasswordHash("Secret@123", "not-a-bcrypt-hash"))
}
