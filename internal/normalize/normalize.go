// Package normalize performs language-aware comment and blank-line elision.
// Comment removal locates comments through the language's syntax tree, so a
// comment-looking token inside a string literal is never touched.
package normalize

import (
	"errors"
	"go/scanner"
	"go/token"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/mvp-joe/contextpack/internal/language"
)

// ErrNoSyntaxSupport means the language has no grammar to locate comments
// with. Callers degrade to the unmodified text.
var ErrNoSyntaxSupport = errors.New("normalize: no syntax support for language")

// Options selects which normalizations to apply.
type Options struct {
	RemoveComments   bool
	RemoveEmptyLines bool
}

// Normalizer removes comments and blank lines from source text.
type Normalizer struct {
	grammars map[string]*sitter.Language
}

// New creates a Normalizer covering the same language set as the extractor.
func New() *Normalizer {
	ts := sitter.NewLanguage(typescript.LanguageTypescript())
	cLang := sitter.NewLanguage(c.Language())
	return &Normalizer{
		grammars: map[string]*sitter.Language{
			language.TypeScript: ts,
			language.JavaScript: ts,
			language.Python:     sitter.NewLanguage(python.Language()),
			language.Rust:       sitter.NewLanguage(rust.Language()),
			language.C:          cLang,
			language.Cpp:        cLang,
			language.Java:       sitter.NewLanguage(java.Language()),
			language.PHP:        sitter.NewLanguage(php.LanguagePHP()),
			language.Ruby:       sitter.NewLanguage(ruby.Language()),
		},
	}
}

// Normalize applies the requested normalizations and returns the result.
// On error the caller should keep the original text.
func (n *Normalizer) Normalize(text, lang string, opts Options) (string, error) {
	out := text
	if opts.RemoveComments {
		stripped, err := n.removeComments(out, lang)
		if err != nil {
			return text, err
		}
		out = stripped
	}
	if opts.RemoveEmptyLines {
		out = removeEmptyLines(out)
	}
	return out, nil
}

// removeComments blanks every comment found in the syntax tree. Comment
// bytes are replaced with spaces (newlines kept), so the line structure of
// the surrounding code is untouched and statements can never merge; the
// whitespace is then trimmed from line ends.
func (n *Normalizer) removeComments(text, lang string) (string, error) {
	var ranges [][2]int
	var err error

	switch lang {
	case language.Go:
		ranges, err = goCommentRanges(text)
	default:
		grammar, ok := n.grammars[lang]
		if !ok {
			return text, ErrNoSyntaxSupport
		}
		ranges, err = sitterCommentRanges(text, grammar)
	}
	if err != nil {
		return text, err
	}

	buf := []byte(text)
	for _, r := range ranges {
		for i := r[0]; i < r[1] && i < len(buf); i++ {
			if buf[i] != '\n' {
				buf[i] = ' '
			}
		}
	}

	return trimLineTrailingSpace(string(buf)), nil
}

// goCommentRanges finds comment byte ranges using go/scanner.
func goCommentRanges(text string) ([][2]int, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("source.go", fset.Base(), len(text))

	var s scanner.Scanner
	s.Init(file, []byte(text), nil, scanner.ScanComments)

	var ranges [][2]int
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.COMMENT {
			start := fset.Position(pos).Offset
			ranges = append(ranges, [2]int{start, start + len(lit)})
		}
	}
	return ranges, nil
}

// sitterCommentRanges finds comment byte ranges by walking the parse tree.
// The parse is error-tolerant: comments are still identified in files with
// syntax errors.
func sitterCommentRanges(text string, grammar *sitter.Language) ([][2]int, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(grammar)

	tree := parser.Parse([]byte(text), nil)
	if tree == nil {
		return nil, errors.New("normalize: parse failed")
	}
	defer tree.Close()

	var ranges [][2]int
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if strings.Contains(node.Kind(), "comment") {
			ranges = append(ranges, [2]int{int(node.StartByte()), int(node.EndByte())})
			return
		}
		for i := uint(0); i < uint(node.ChildCount()); i++ {
			walk(node.Child(i))
		}
	}
	walk(tree.RootNode())

	return ranges, nil
}

// removeEmptyLines drops whitespace-only lines, keeping a single trailing
// newline when the input had one.
func removeEmptyLines(text string) string {
	hadTrailing := strings.HasSuffix(text, "\n")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}

	out := strings.Join(kept, "\n")
	if hadTrailing && out != "" {
		out += "\n"
	}
	return out
}

// trimLineTrailingSpace removes whitespace left at line ends after comment
// blanking.
func trimLineTrailingSpace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
