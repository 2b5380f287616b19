package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the token counter:
// - Non-empty text counts to a positive number
// - Empty text counts to zero
// - Zero() always reports zero

func TestCounter_Count(t *testing.T) {
	t.Parallel()

	c, err := NewCounter()
	if err != nil {
		t.Skipf("cl100k_base encoding unavailable: %v", err)
	}
	require.NotNil(t, c)

	assert.Greater(t, c.Count("func add(a, b int) int { return a + b }"), 0)
	assert.Equal(t, 0, c.Count(""))
}

func TestZeroCounter(t *testing.T) {
	t.Parallel()

	c := Zero()
	assert.Equal(t, 0, c.Count("anything at all"))
}
