// Package extract converts parsed source syntax into structural skeleton
// trees: declarations and signatures survive, executable bodies are elided.
package extract

import "errors"

// Sentinel errors for extraction failures. Callers degrade to full-text
// rendering on either; they never produce a partial skeleton.
var (
	// ErrUnsupportedLanguage means no extractor exists for the language tag.
	ErrUnsupportedLanguage = errors.New("extract: unsupported language")

	// ErrParseFailed means the source could not be parsed into a syntax tree.
	ErrParseFailed = errors.New("extract: parse failed")
)

// NodeKind classifies a skeleton node.
type NodeKind string

const (
	KindModule    NodeKind = "module"
	KindClass     NodeKind = "class"
	KindStruct    NodeKind = "struct"
	KindInterface NodeKind = "interface"
	KindEnum      NodeKind = "enum"
	KindFunction  NodeKind = "function"
	KindMethod    NodeKind = "method"
)

// Node is one unit of a skeleton tree. The root is always a KindModule node
// whose Signature is empty. Children preserve textual source order.
//
// Signature is the exact source slice from declaration start to body start
// (or the whole declaration when there is no body), including leading
// modifiers and annotations but excluding leading indentation. Indent
// records the column the declaration started at so rendering can restore
// the original layout.
type Node struct {
	Kind      NodeKind
	Name      string
	Signature string
	Indent    int
	Verbatim  bool // Signature is the complete declaration; no body to elide
	Children  []*Node
}

// AddChild appends a child node, preserving source order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// IsContainer reports whether the node normally holds member declarations.
func (n *Node) IsContainer() bool {
	switch n.Kind {
	case KindModule, KindClass, KindStruct, KindInterface, KindEnum:
		return true
	default:
		return false
	}
}
