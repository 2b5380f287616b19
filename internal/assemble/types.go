// Package assemble builds the ordered Document from discovered files: it
// decides full text versus skeleton per file, normalizes, counts sizes, and
// aggregates stats.
package assemble

// RenderMode tags how a file's content was rendered.
type RenderMode string

const (
	// ModeFull keeps the file's complete text.
	ModeFull RenderMode = "full"

	// ModeSkeleton keeps declarations and signatures with bodies elided.
	ModeSkeleton RenderMode = "skeleton"
)

// SourceFile is a loaded input file. Immutable once read.
type SourceFile struct {
	// Path is the root-relative slash-separated path, unique per run.
	Path string

	// Language is the detected language tag (language.Unknown if none).
	Language string

	// Content is the raw file text.
	Content []byte
}

// FileRecord is one file's final rendering plus its size metrics.
type FileRecord struct {
	Path       string
	Language   string
	Mode       RenderMode
	Text       string
	CharCount  int
	TokenCount int
}

// TopFile is one entry of the top-files ranking.
type TopFile struct {
	Path       string
	CharCount  int
	TokenCount int
}

// Stats aggregates size metrics over the whole document.
type Stats struct {
	TotalFiles  int
	TotalChars  int
	TotalTokens int
	TopFiles    []TopFile
}

// Document is the assembled output. Built once per run, immutable
// thereafter, consumed exactly once by the renderer.
type Document struct {
	// Header is optional user preamble text shown before everything else.
	Header string

	// Intent is the user's task description, rendered as a distinguished
	// preamble block, never as a file.
	Intent string

	// Files in discovery order. Renderers must not reorder.
	Files []FileRecord

	// GitLog and GitDiff are opaque preformatted blocks, attached when
	// requested and present.
	GitLog  string
	GitDiff string

	Stats Stats
}
