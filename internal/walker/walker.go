// Package walker discovers the files to pack. Its walk order is the
// authoritative discovery order for the rest of the pipeline.
package walker

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnores are directories and artifacts that never belong in a
// context pack.
var DefaultIgnores = []string{
	".git/**",
	"node_modules/**",
	"vendor/**",
	"dist/**",
	"build/**",
	"target/**",
	"__pycache__/**",
	"*.pyc",
	"*.test",
}

// Walker walks a root directory applying include and ignore patterns.
type Walker struct {
	root     string
	includes *PatternSet
	ignores  *PatternSet
}

// Config controls discovery.
type Config struct {
	// IncludePatterns restrict discovery when non-empty; otherwise every
	// file not ignored is discovered.
	IncludePatterns []string

	// IgnorePatterns exclude matching files.
	IgnorePatterns []string

	// UseDefaultIgnores adds DefaultIgnores to the ignore set.
	UseDefaultIgnores bool

	// RespectGitignore adds the root .gitignore entries to the ignore set.
	RespectGitignore bool
}

// New creates a Walker for root. Pattern compilation errors surface here so
// a bad pattern fails the run before any walking happens.
func New(root string, cfg Config) (*Walker, error) {
	includes, err := CompilePatterns(cfg.IncludePatterns)
	if err != nil {
		return nil, err
	}

	ignorePatterns := append([]string{}, cfg.IgnorePatterns...)
	if cfg.UseDefaultIgnores {
		ignorePatterns = append(ignorePatterns, DefaultIgnores...)
	}
	if cfg.RespectGitignore {
		ignorePatterns = append(ignorePatterns, gitignorePatterns(root)...)
	}

	ignores, err := CompilePatterns(ignorePatterns)
	if err != nil {
		return nil, err
	}

	return &Walker{root: root, includes: includes, ignores: ignores}, nil
}

// Discover walks the tree and returns root-relative slash-separated paths.
// filepath.Walk visits entries in lexical order, so the result is
// deterministic for a given tree.
func (w *Walker) Discover() ([]string, error) {
	paths := []string{}

	err := filepath.Walk(w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(w.root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && w.ignores.MatchDir(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if w.ignores.Match(relPath) {
			return nil
		}
		if !w.includes.Empty() && !w.includes.Match(relPath) {
			return nil
		}

		paths = append(paths, relPath)
		return nil
	})

	return paths, err
}

// gitignorePatterns reads the root .gitignore and converts its entries to
// glob patterns. Negations are not supported; those lines are skipped.
func gitignorePatterns(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		line = strings.TrimPrefix(line, "/")
		line = strings.TrimSuffix(line, "/")
		// A bare name ignores the entry anywhere in the tree, files and
		// directory contents both.
		patterns = append(patterns, line, line+"/**", "**/"+line, "**/"+line+"/**")
	}
	return patterns
}
