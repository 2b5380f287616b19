package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the walker:
// - Discovery returns root-relative paths in lexical order
// - Default ignore patterns prune node_modules and friends
// - Custom ignore patterns exclude matching files
// - Include patterns restrict discovery when present
// - .gitignore entries are honored when requested
// - Invalid glob patterns fail at construction
// - PatternSet: bare directory names cover their subtree

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "b.txt", "notes\n")
	writeFile(t, root, "sub/c.go", "package sub\n")
	writeFile(t, root, "node_modules/lib/d.js", "module.exports = {}\n")
	return root
}

func TestWalker_DiscoverLexicalOrder(t *testing.T) {
	t.Parallel()

	root := testTree(t)

	w, err := New(root, Config{UseDefaultIgnores: true})
	require.NoError(t, err)

	paths, err := w.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b.txt", "sub/c.go"}, paths)
}

func TestWalker_CustomIgnore(t *testing.T) {
	t.Parallel()

	root := testTree(t)

	w, err := New(root, Config{
		UseDefaultIgnores: true,
		IgnorePatterns:    []string{"*.txt"},
	})
	require.NoError(t, err)

	paths, err := w.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "sub/c.go"}, paths)
}

func TestWalker_IncludePatterns(t *testing.T) {
	t.Parallel()

	root := testTree(t)

	w, err := New(root, Config{
		UseDefaultIgnores: true,
		IncludePatterns:   []string{"sub/**"},
	})
	require.NoError(t, err)

	paths, err := w.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/c.go"}, paths)
}

func TestWalker_Gitignore(t *testing.T) {
	t.Parallel()

	root := testTree(t)
	writeFile(t, root, "secret.txt", "hidden\n")
	writeFile(t, root, ".gitignore", "secret.txt\n# comment\n\n!negated.txt\n")

	w, err := New(root, Config{
		UseDefaultIgnores: true,
		RespectGitignore:  true,
	})
	require.NoError(t, err)

	paths, err := w.Discover()
	require.NoError(t, err)
	assert.NotContains(t, paths, "secret.txt")
	assert.Contains(t, paths, "a.go")
}

func TestWalker_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := New(t.TempDir(), Config{IncludePatterns: []string{"[unterminated"}})
	assert.Error(t, err)
}

func TestPatternSet_DirectoryCoverage(t *testing.T) {
	t.Parallel()

	set, err := CompilePatterns([]string{"src"})
	require.NoError(t, err)

	assert.True(t, set.Match("src/main.go"))
	assert.True(t, set.Match("src"))
	assert.False(t, set.Match("other/main.go"))
	assert.False(t, set.Empty())

	empty, err := CompilePatterns(nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}
