package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// javaExtractor builds skeletons for Java files.
type javaExtractor struct {
	*treeSitterExtractor
}

func newJavaExtractor() *javaExtractor {
	lang := sitter.NewLanguage(java.Language())
	return &javaExtractor{
		treeSitterExtractor: newTreeSitterExtractor(lang, "java"),
	}
}

func (p *javaExtractor) extract(content []byte) (*Node, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := &Node{Kind: KindModule}
	eachChild(tree.RootNode(), func(n *sitter.Node) {
		switch n.Kind() {
		case "package_declaration":
			root.Signature = trimSignature(nodeText(n, content))
		case "class_declaration":
			root.AddChild(p.typeNode(n, content, KindClass))
		case "interface_declaration":
			root.AddChild(p.typeNode(n, content, KindInterface))
		case "enum_declaration":
			root.AddChild(p.typeNode(n, content, KindEnum))
		}
	})
	return root, nil
}

// typeNode converts a class, interface or enum declaration, surfacing
// member signatures. Nested types recurse.
func (p *javaExtractor) typeNode(n *sitter.Node, source []byte, kind NodeKind) *Node {
	node := &Node{
		Kind:      kind,
		Name:      nodeName(n, source),
		Signature: signatureSlice(n, source),
		Indent:    nodeIndent(n),
	}

	eachChild(n.ChildByFieldName("body"), func(member *sitter.Node) {
		switch member.Kind() {
		case "method_declaration", "constructor_declaration":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: signatureSlice(member, source),
				Indent:    nodeIndent(member),
				Verbatim:  !hasBody(member),
			})
		case "field_declaration", "constant_declaration", "enum_constant":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Signature: trimSignature(nodeText(member, source)),
				Indent:    nodeIndent(member),
				Verbatim:  true,
			})
		case "class_declaration":
			node.AddChild(p.typeNode(member, source, KindClass))
		case "interface_declaration":
			node.AddChild(p.typeNode(member, source, KindInterface))
		case "enum_declaration":
			node.AddChild(p.typeNode(member, source, KindEnum))
		}
	})

	return node
}
