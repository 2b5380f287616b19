package extract

import (
	"github.com/mvp-joe/contextpack/internal/language"
)

// Extractor turns raw source content into a skeleton tree.
type Extractor interface {
	// Extract parses content and returns the skeleton tree for it.
	// Returns ErrUnsupportedLanguage when no extractor exists for lang and
	// ErrParseFailed when the source cannot be parsed.
	Extract(content []byte, lang string) (*Node, error)

	// SupportsLanguage checks if a language has a skeleton extractor.
	SupportsLanguage(lang string) bool
}

// languageExtractor is the per-language extraction contract.
type languageExtractor interface {
	extract(content []byte) (*Node, error)
}

// multiLanguageExtractor routes to a language-specific extractor. Go uses
// go/parser from the standard toolchain; every other language uses its
// tree-sitter grammar.
type multiLanguageExtractor struct {
	extractors map[string]languageExtractor
}

// NewExtractor creates an extractor that supports all built-in languages.
func NewExtractor() Extractor {
	ts := newTypeScriptExtractor()
	c := newCExtractor()
	return &multiLanguageExtractor{
		extractors: map[string]languageExtractor{
			language.Go:         newGoExtractor(),
			language.TypeScript: ts,
			language.JavaScript: ts, // TSX grammar is a superset of JS
			language.Python:     newPythonExtractor(),
			language.Rust:       newRustExtractor(),
			language.C:          c,
			language.Cpp:        c, // headers and C-compatible subset
			language.Java:       newJavaExtractor(),
			language.PHP:        newPHPExtractor(),
			language.Ruby:       newRubyExtractor(),
		},
	}
}

func (m *multiLanguageExtractor) Extract(content []byte, lang string) (*Node, error) {
	ex, ok := m.extractors[lang]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	return ex.extract(content)
}

func (m *multiLanguageExtractor) SupportsLanguage(lang string) bool {
	_, ok := m.extractors[lang]
	return ok
}
