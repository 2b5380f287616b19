// Package language maps source files to the language tags used by the
// skeleton extractor and the normalizer.
package language

import (
	"path/filepath"
	"strings"
)

// Language tags understood by the rest of the pipeline.
const (
	Go         = "go"
	TypeScript = "typescript"
	JavaScript = "javascript"
	Python     = "python"
	Rust       = "rust"
	C          = "c"
	Cpp        = "cpp"
	Java       = "java"
	PHP        = "php"
	Ruby       = "ruby"
	Unknown    = "unknown"
)

// Detect returns the language tag for a file path based on its extension.
// Unknown extensions return Unknown; callers treat those files as opaque
// text and never attempt extraction.
func Detect(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".go":
		return Go
	case ".ts", ".tsx":
		return TypeScript
	case ".js", ".jsx", ".mjs", ".cjs":
		return JavaScript
	case ".py":
		return Python
	case ".rs":
		return Rust
	case ".c", ".h":
		return C
	case ".cpp", ".cc", ".cxx", ".hpp":
		return Cpp
	case ".java":
		return Java
	case ".php":
		return PHP
	case ".rb":
		return Ruby
	default:
		return Unknown
	}
}

// IsBinary reports whether content looks like binary data. It checks the
// first 8KB for a NUL byte, the same heuristic used by tools like 'file'.
func IsBinary(content []byte) bool {
	n := len(content)
	if n > 8192 {
		n = 8192
	}
	for i := 0; i < n; i++ {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
