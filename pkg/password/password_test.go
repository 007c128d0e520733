package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia123")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia123", hashed)

	assert.True(t, CheckPasswordHash("rahasia123", hashed))
	assert.False(t, CheckPasswordHash("tebakan-salah", hashed))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("rahasia123")
	require.NoError(t, err)
	second, err := HashPassword("rahasia123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
