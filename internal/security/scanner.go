// Package security screens file content for secrets that must never end up
// inside a generated context pack.
package security

import "regexp"

// Scanner reports whether file content is safe to include.
type Scanner interface {
	// IsSafe returns false when the content appears to contain a secret.
	// An unsafe file is excluded from the document entirely.
	IsSafe(path string, content string) bool
}

// suspectPatterns match common credential shapes: generic key/secret/token
// assignments, GitHub personal access tokens, Stripe live keys.
var suspectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api_key|apikey|secret|token).{0,20}['"][0-9a-zA-Z]{32,45}['"]`),
	regexp.MustCompile(`ghp_[0-9a-zA-Z]{36}`),
	regexp.MustCompile(`sk_live_[0-9a-zA-Z]{24}`),
}

type regexScanner struct{}

// NewScanner returns the default pattern-based scanner.
func NewScanner() Scanner {
	return &regexScanner{}
}

func (s *regexScanner) IsSafe(path string, content string) bool {
	for _, re := range suspectPatterns {
		if re.MatchString(content) {
			return false
		}
	}
	return true
}

// allowAll is the scanner used when the security check is disabled.
type allowAll struct{}

// AllowAll returns a Scanner that accepts everything.
func AllowAll() Scanner {
	return allowAll{}
}

func (allowAll) IsSafe(string, string) bool { return true }
