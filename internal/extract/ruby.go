package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

// rubyExtractor builds skeletons for Ruby files.
type rubyExtractor struct {
	*treeSitterExtractor
}

func newRubyExtractor() *rubyExtractor {
	lang := sitter.NewLanguage(ruby.Language())
	return &rubyExtractor{
		treeSitterExtractor: newTreeSitterExtractor(lang, "ruby"),
	}
}

func (p *rubyExtractor) extract(content []byte) (*Node, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := &Node{Kind: KindModule}
	eachChild(tree.RootNode(), func(n *sitter.Node) {
		p.statement(n, content, root, false)
	})
	return root, nil
}

func (p *rubyExtractor) statement(n *sitter.Node, source []byte, parent *Node, nested bool) {
	switch n.Kind() {
	case "class":
		parent.AddChild(p.container(n, source, KindClass))
	case "module":
		parent.AddChild(p.container(n, source, KindModule))
	case "method", "singleton_method":
		kind := KindFunction
		if nested {
			kind = KindMethod
		}
		parent.AddChild(&Node{
			Kind:      kind,
			Name:      nodeName(n, source),
			Signature: rubySignature(n, source),
			Indent:    nodeIndent(n),
		})
	case "assignment":
		// Top-level and class-level constants kept verbatim.
		parent.AddChild(&Node{
			Kind:      KindModule,
			Signature: trimSignature(nodeText(n, source)),
			Indent:    nodeIndent(n),
			Verbatim:  true,
		})
	}
}

// container converts a class or module definition. The Ruby grammar hangs
// members directly off the definition node rather than a body field, so we
// walk direct children the way the definition appears in source.
func (p *rubyExtractor) container(n *sitter.Node, source []byte, kind NodeKind) *Node {
	node := &Node{
		Kind:      kind,
		Name:      nodeName(n, source),
		Signature: rubySignature(n, source),
		Indent:    nodeIndent(n),
	}
	eachChild(n, func(child *sitter.Node) {
		if child.Kind() == "body_statement" {
			eachChild(child, func(member *sitter.Node) {
				p.statement(member, source, node, true)
			})
			return
		}
		p.statement(child, source, node, true)
	})
	return node
}

// rubySignature returns the header line of a definition: "class Foo < Bar"
// or "def write(record)". Ruby has no brace to slice up to, so the first
// source line is the signature.
func rubySignature(n *sitter.Node, source []byte) string {
	text := nodeText(n, source)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	// One-line definitions put the body after a semicolon.
	if idx := strings.IndexByte(text, ';'); idx >= 0 {
		text = text[:idx]
	}
	return trimSignature(text)
}
