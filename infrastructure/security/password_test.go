package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, ComparePassword(hash, "secret123"))
	require.False(t, ComparePassword(hash, "secret124"))
	require.False(t, ComparePassword("not-a-hash", "secret123"))
}
