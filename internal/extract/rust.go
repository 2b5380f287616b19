package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// rustExtractor builds skeletons for Rust files.
type rustExtractor struct {
	*treeSitterExtractor
}

func newRustExtractor() *rustExtractor {
	lang := sitter.NewLanguage(rust.Language())
	return &rustExtractor{
		treeSitterExtractor: newTreeSitterExtractor(lang, "rust"),
	}
}

func (p *rustExtractor) extract(content []byte) (*Node, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := &Node{Kind: KindModule}
	eachChild(tree.RootNode(), func(n *sitter.Node) {
		p.item(n, content, root)
	})
	return root, nil
}

// item handles one item at module scope. Inline modules recurse; use
// declarations are skipped as structural noise.
func (p *rustExtractor) item(n *sitter.Node, source []byte, parent *Node) {
	switch n.Kind() {
	case "struct_item":
		parent.AddChild(p.verbatimItem(n, source, KindStruct))
	case "enum_item":
		parent.AddChild(p.verbatimItem(n, source, KindEnum))
	case "const_item", "static_item", "type_item", "macro_definition", "attribute_item":
		parent.AddChild(p.verbatimItem(n, source, KindModule))
	case "trait_item":
		parent.AddChild(p.containerItem(n, source, KindInterface))
	case "impl_item":
		parent.AddChild(p.implItem(n, source))
	case "function_item":
		parent.AddChild(&Node{
			Kind:      KindFunction,
			Name:      nodeName(n, source),
			Signature: signatureSlice(n, source),
			Indent:    nodeIndent(n),
		})
	case "mod_item":
		if hasBody(n) {
			mod := &Node{
				Kind:      KindModule,
				Name:      nodeName(n, source),
				Signature: signatureSlice(n, source),
				Indent:    nodeIndent(n),
			}
			eachChild(n.ChildByFieldName("body"), func(child *sitter.Node) {
				p.item(child, source, mod)
			})
			parent.AddChild(mod)
		} else {
			parent.AddChild(p.verbatimItem(n, source, KindModule))
		}
	}
}

func (p *rustExtractor) verbatimItem(n *sitter.Node, source []byte, kind NodeKind) *Node {
	return &Node{
		Kind:      kind,
		Name:      nodeName(n, source),
		Signature: trimSignature(nodeText(n, source)),
		Indent:    nodeIndent(n),
		Verbatim:  true,
	}
}

// containerItem converts a trait: signatures surface, default method bodies
// are elided.
func (p *rustExtractor) containerItem(n *sitter.Node, source []byte, kind NodeKind) *Node {
	node := &Node{
		Kind:      kind,
		Name:      nodeName(n, source),
		Signature: signatureSlice(n, source),
		Indent:    nodeIndent(n),
	}
	eachChild(n.ChildByFieldName("body"), func(member *sitter.Node) {
		switch member.Kind() {
		case "function_item":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: signatureSlice(member, source),
				Indent:    nodeIndent(member),
				Verbatim:  !hasBody(member),
			})
		case "function_signature_item", "associated_type", "const_item":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: trimSignature(nodeText(member, source)),
				Indent:    nodeIndent(member),
				Verbatim:  true,
			})
		}
	})
	return node
}

// implItem converts an impl block into a class-like container holding its
// method signatures.
func (p *rustExtractor) implItem(n *sitter.Node, source []byte) *Node {
	node := &Node{
		Kind:      KindClass,
		Name:      nodeText(n.ChildByFieldName("type"), source),
		Signature: signatureSlice(n, source),
		Indent:    nodeIndent(n),
	}
	eachChild(n.ChildByFieldName("body"), func(member *sitter.Node) {
		switch member.Kind() {
		case "function_item":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: signatureSlice(member, source),
				Indent:    nodeIndent(member),
				Verbatim:  !hasBody(member),
			})
		case "const_item", "type_item":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: trimSignature(nodeText(member, source)),
				Indent:    nodeIndent(member),
				Verbatim:  true,
			})
		}
	})
	return node
}
