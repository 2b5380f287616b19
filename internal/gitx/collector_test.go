package gitx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for the git collector:
// - A plain directory is not a repository
// - ChangeCounts outside a repository degrades to an empty map
// - Log and Diff outside a repository return errors

func TestCollector_NotARepo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g := NewCollector()

	assert.False(t, g.IsRepo(dir))
	assert.Empty(t, g.ChangeCounts(dir))

	_, err := g.Log(dir)
	assert.Error(t, err)
	_, err = g.Diff(dir)
	assert.Error(t, err)
}
