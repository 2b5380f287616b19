package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// treeSitterExtractor provides common tree-sitter parsing functionality for
// the per-language extractors.
type treeSitterExtractor struct {
	language *sitter.Language
	lang     string
}

func newTreeSitterExtractor(lang *sitter.Language, tag string) *treeSitterExtractor {
	return &treeSitterExtractor{
		language: lang,
		lang:     tag,
	}
}

// parse parses source and returns the syntax tree. The caller must Close
// the returned tree. A nil tree or a root containing syntax errors is
// reported as ErrParseFailed so the caller degrades to full text instead of
// emitting a skeleton built from a broken tree.
func (t *treeSitterExtractor) parse(source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(t.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, ErrParseFailed
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, ErrParseFailed
	}
	return tree, nil
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// nodeName returns the text of the node's "name" field, if any.
func nodeName(node *sitter.Node, source []byte) string {
	return nodeText(node.ChildByFieldName("name"), source)
}

// signatureSlice returns the exact source slice from the declaration start
// to the start of its body, trailing whitespace trimmed. When the node has
// no body field the whole node text is returned (bodyless declaration).
func signatureSlice(node *sitter.Node, source []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return trimSignature(nodeText(node, source))
	}
	return trimSignature(string(source[node.StartByte():body.StartByte()]))
}

// trimSignature drops trailing whitespace left between a declaration header
// and the body it introduced.
func trimSignature(s string) string {
	return strings.TrimRight(s, " \t\n")
}

// nodeIndent returns the column the node starts at.
func nodeIndent(node *sitter.Node) int {
	return int(node.StartPosition().Column)
}

// hasBody reports whether the node carries a body field.
func hasBody(node *sitter.Node) bool {
	return node.ChildByFieldName("body") != nil
}

// eachChild calls fn for every child of node, in source order.
func eachChild(node *sitter.Node, fn func(*sitter.Node)) {
	if node == nil {
		return
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		fn(node.Child(i))
	}
}

// walkTree recursively walks the tree and calls the visitor for each node.
// Returning false from the visitor stops descent below that node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visitor(node) {
		return
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		walkTree(node.Child(i), visitor)
	}
}
