package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

// phpExtractor builds skeletons for PHP files.
type phpExtractor struct {
	*treeSitterExtractor
}

func newPHPExtractor() *phpExtractor {
	lang := sitter.NewLanguage(php.LanguagePHP())
	return &phpExtractor{
		treeSitterExtractor: newTreeSitterExtractor(lang, "php"),
	}
}

func (p *phpExtractor) extract(content []byte) (*Node, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := &Node{Kind: KindModule}
	if strings.HasPrefix(strings.TrimSpace(string(content)), "<?php") {
		root.Signature = "<?php"
	}

	eachChild(tree.RootNode(), func(n *sitter.Node) {
		p.statement(n, content, root)
	})
	return root, nil
}

func (p *phpExtractor) statement(n *sitter.Node, source []byte, parent *Node) {
	switch n.Kind() {
	case "namespace_definition":
		if hasBody(n) {
			ns := &Node{
				Kind:      KindModule,
				Name:      nodeName(n, source),
				Signature: signatureSlice(n, source),
				Indent:    nodeIndent(n),
			}
			eachChild(n.ChildByFieldName("body"), func(child *sitter.Node) {
				p.statement(child, source, ns)
			})
			parent.AddChild(ns)
		} else {
			parent.AddChild(&Node{
				Kind:      KindModule,
				Name:      nodeName(n, source),
				Signature: trimSignature(nodeText(n, source)),
				Indent:    nodeIndent(n),
				Verbatim:  true,
			})
		}
	case "class_declaration", "trait_declaration":
		parent.AddChild(p.classLike(n, source, KindClass))
	case "interface_declaration":
		parent.AddChild(p.classLike(n, source, KindInterface))
	case "enum_declaration":
		parent.AddChild(p.classLike(n, source, KindEnum))
	case "function_definition":
		parent.AddChild(&Node{
			Kind:      KindFunction,
			Name:      nodeName(n, source),
			Signature: signatureSlice(n, source),
			Indent:    nodeIndent(n),
		})
	case "const_declaration":
		parent.AddChild(&Node{
			Kind:      KindModule,
			Signature: trimSignature(nodeText(n, source)),
			Indent:    nodeIndent(n),
			Verbatim:  true,
		})
	}
}

// classLike converts class, trait, interface and enum declarations.
func (p *phpExtractor) classLike(n *sitter.Node, source []byte, kind NodeKind) *Node {
	node := &Node{
		Kind:      kind,
		Name:      nodeName(n, source),
		Signature: signatureSlice(n, source),
		Indent:    nodeIndent(n),
	}

	eachChild(n.ChildByFieldName("body"), func(member *sitter.Node) {
		switch member.Kind() {
		case "method_declaration":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: signatureSlice(member, source),
				Indent:    nodeIndent(member),
				Verbatim:  !hasBody(member),
			})
		case "property_declaration", "const_declaration", "use_declaration", "enum_case":
			node.AddChild(&Node{
				Kind:      KindMethod,
				Signature: trimSignature(nodeText(member, source)),
				Indent:    nodeIndent(member),
				Verbatim:  true,
			})
		}
	})

	return node
}
