package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, VerifyPassword(hash, "secret123"))
	require.False(t, VerifyPassword(hash, "wrong"))
	require.False(t, VerifyPassword(hash, ""))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Same input, different salt, different hash
	require.NotEqual(t, first, second)
}

func TestRandomHex(t *testing.T) {
	a, err := RandomHex(32)
	require.NoError(t, err)
	require.Len(t, a, 64)

	b, err := RandomHex(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
