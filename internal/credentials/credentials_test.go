package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndMatch(t *testing.T) {
	hash, err := Hash("secreto")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, Matches(hash, "secreto"))
	assert.False(t, Matches(hash, "otra"))
}

func TestMatchesLegacyPlaintext(t *testing.T) {
	// Seeded demo accounts store their credential as-is.
	assert.True(t, Matches("123", "123"))
	assert.False(t, Matches("123", "1234"))
	assert.False(t, Matches("", "123"))
}
