// Package render serializes an assembled Document into one of the output
// styles. Every style is a lossless serialization of the same fields and
// never reorders the file sequence.
package render

import (
	"errors"
	"fmt"

	"github.com/mvp-joe/contextpack/internal/assemble"
)

// Output styles.
const (
	StyleXML      = "xml"
	StyleMarkdown = "markdown"
	StyleJSON     = "json"
	StylePlain    = "plain"
)

// ErrInvalidStyle means the requested style does not exist. Unlike per-file
// degradations this is fatal: no valid output is possible.
var ErrInvalidStyle = errors.New("render: invalid output style")

// summaryText opens every document so a consumer knows how to read it.
const summaryText = "This document is a packed representation of a repository's files. " +
	"Files marked \"full\" contain complete source text; files marked " +
	"\"skeleton\" contain declarations and signatures with function bodies elided."

// Styles lists the valid style names for help text and validation.
func Styles() []string {
	return []string{StyleXML, StyleMarkdown, StyleJSON, StylePlain}
}

// Render serializes doc in the given style.
func Render(doc *assemble.Document, style string) (string, error) {
	switch style {
	case StyleXML:
		return renderXML(doc), nil
	case StyleMarkdown:
		return renderMarkdown(doc), nil
	case StyleJSON:
		return renderJSON(doc)
	case StylePlain:
		return renderPlain(doc), nil
	default:
		return "", fmt.Errorf("%w: %q (valid: xml, markdown, json, plain)", ErrInvalidStyle, style)
	}
}
