package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// cExtractor builds skeletons for C files and C-compatible C++ headers.
type cExtractor struct {
	*treeSitterExtractor
}

func newCExtractor() *cExtractor {
	lang := sitter.NewLanguage(c.Language())
	return &cExtractor{
		treeSitterExtractor: newTreeSitterExtractor(lang, "c"),
	}
}

func (p *cExtractor) extract(content []byte) (*Node, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := &Node{Kind: KindModule}
	eachChild(tree.RootNode(), func(n *sitter.Node) {
		switch n.Kind() {
		case "function_definition":
			root.AddChild(&Node{
				Kind:      KindFunction,
				Name:      declaratorName(n, content),
				Signature: signatureSlice(n, content),
				Indent:    nodeIndent(n),
			})
		case "declaration", "type_definition":
			// Prototypes, globals and typedefs carry no executable body.
			root.AddChild(&Node{
				Kind:      KindModule,
				Signature: trimSignature(nodeText(n, content)),
				Indent:    nodeIndent(n),
				Verbatim:  true,
			})
		case "struct_specifier", "union_specifier":
			root.AddChild(&Node{
				Kind:      KindStruct,
				Name:      nodeName(n, content),
				Signature: trimSignature(nodeText(n, content)),
				Indent:    nodeIndent(n),
				Verbatim:  true,
			})
		case "enum_specifier":
			root.AddChild(&Node{
				Kind:      KindEnum,
				Name:      nodeName(n, content),
				Signature: trimSignature(nodeText(n, content)),
				Indent:    nodeIndent(n),
				Verbatim:  true,
			})
		}
	})
	return root, nil
}

// declaratorName digs the identifier out of nested declarators, the same
// unwrapping the C grammar forces on pointers and function declarators.
func declaratorName(n *sitter.Node, source []byte) string {
	node := n.ChildByFieldName("declarator")
	for node != nil {
		switch node.Kind() {
		case "identifier":
			return nodeText(node, source)
		case "function_declarator", "pointer_declarator", "array_declarator":
			node = node.ChildByFieldName("declarator")
		default:
			return ""
		}
	}
	return ""
}
