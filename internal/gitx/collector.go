// Package gitx shells out to git for the optional history blocks attached
// to a document and for change-frequency file ordering.
package gitx

import (
	"fmt"
	"os/exec"
	"strings"
)

// Collector exposes the git operations the packer consumes. An interface so
// tests can substitute canned output.
type Collector interface {
	// IsRepo reports whether path is inside a git work tree.
	IsRepo(path string) bool

	// Log returns recent commit history as opaque text.
	Log(path string) (string, error)

	// Diff returns the working-tree diff against HEAD as opaque text.
	Diff(path string) (string, error)

	// ChangeCounts returns how often each file changed in recent history,
	// keyed by repository-relative path.
	ChangeCounts(path string) map[string]int

	// Clone shallow-clones url into target. branch may be empty.
	Clone(url, target, branch string) error
}

type gitCollector struct{}

// NewCollector returns the default implementation using exec.Command.
func NewCollector() Collector {
	return &gitCollector{}
}

func (g *gitCollector) IsRepo(path string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = path
	return cmd.Run() == nil
}

func (g *gitCollector) Log(path string) (string, error) {
	cmd := exec.Command("git", "log", "-n", "50", "--pretty=format:%h - %an, %ar : %s")
	cmd.Dir = path
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("gitx: log: %w", err)
	}
	return string(output), nil
}

func (g *gitCollector) Diff(path string) (string, error) {
	cmd := exec.Command("git", "diff", "HEAD")
	cmd.Dir = path
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("gitx: diff: %w", err)
	}
	return string(output), nil
}

func (g *gitCollector) ChangeCounts(path string) map[string]int {
	counts := make(map[string]int)

	cmd := exec.Command("git", "log", "--name-only", "--format=", "-n", "100")
	cmd.Dir = path
	output, err := cmd.Output()
	if err != nil {
		return counts
	}

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			counts[line]++
		}
	}
	return counts
}

func (g *gitCollector) Clone(url, target, branch string) error {
	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, target)

	if err := exec.Command("git", args...).Run(); err != nil {
		return fmt.Errorf("gitx: clone %s: %w", url, err)
	}
	return nil
}
