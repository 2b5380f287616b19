package walker

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// PatternSet is a compiled list of glob patterns matched against
// slash-separated relative paths.
type PatternSet struct {
	sources  []string
	compiled []glob.Glob

	// dirGlobs hold the directory prefix of each "dir/**" pattern so the
	// walk can prune whole subtrees.
	dirGlobs []glob.Glob
}

// CompilePatterns compiles patterns into a PatternSet. Compilation failure
// of any pattern fails the whole set.
func CompilePatterns(patterns []string) (*PatternSet, error) {
	set := &PatternSet{sources: patterns}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("walker: invalid pattern %q: %w", p, err)
		}
		set.compiled = append(set.compiled, g)

		if base, ok := strings.CutSuffix(p, "/**"); ok {
			dg, err := glob.Compile(base, '/')
			if err != nil {
				return nil, fmt.Errorf("walker: invalid pattern %q: %w", p, err)
			}
			set.dirGlobs = append(set.dirGlobs, dg)
		}
	}
	return set, nil
}

// Empty reports whether the set has no patterns.
func (s *PatternSet) Empty() bool {
	return len(s.compiled) == 0
}

// Match reports whether relPath matches any pattern in the set. A bare
// directory pattern like "src" also covers everything beneath it.
func (s *PatternSet) Match(relPath string) bool {
	for i, g := range s.compiled {
		if g.Match(relPath) {
			return true
		}
		src := s.sources[i]
		if !strings.ContainsAny(src, "*?[{") && strings.HasPrefix(relPath, src+"/") {
			return true
		}
	}
	return false
}

// MatchDir reports whether a directory is fully covered by the set, so the
// walk can skip its subtree.
func (s *PatternSet) MatchDir(relPath string) bool {
	if s.Match(relPath) {
		return true
	}
	for _, g := range s.dirGlobs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
