package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// typeScriptExtractor builds skeletons for TypeScript and JavaScript files.
// JavaScript shares the grammar: the TypeScript parse tree is a superset.
type typeScriptExtractor struct {
	*treeSitterExtractor
}

func newTypeScriptExtractor() *typeScriptExtractor {
	lang := sitter.NewLanguage(typescript.LanguageTypescript())
	return &typeScriptExtractor{
		treeSitterExtractor: newTreeSitterExtractor(lang, "typescript"),
	}
}

func (p *typeScriptExtractor) extract(content []byte) (*Node, error) {
	tree, err := p.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := &Node{Kind: KindModule}
	eachChild(tree.RootNode(), func(n *sitter.Node) {
		p.topLevel(n, content, root)
	})
	return root, nil
}

// topLevel handles one statement at module scope. Export statements are
// unwrapped so the `export` modifier stays part of the signature.
func (p *typeScriptExtractor) topLevel(n *sitter.Node, source []byte, parent *Node) {
	switch n.Kind() {
	case "export_statement":
		decl := n.ChildByFieldName("declaration")
		if decl != nil {
			p.declaration(decl, n, source, parent)
		}
	default:
		p.declaration(n, n, source, parent)
	}
}

// declaration converts a single declaration node. outer is the node the
// signature slice starts from (the export statement when present).
func (p *typeScriptExtractor) declaration(n, outer *sitter.Node, source []byte, parent *Node) {
	switch n.Kind() {
	case "class_declaration", "abstract_class_declaration":
		parent.AddChild(p.classNode(n, outer, source))
	case "interface_declaration":
		parent.AddChild(&Node{
			Kind:      KindInterface,
			Name:      nodeName(n, source),
			Signature: outerSlice(n, outer, source),
			Indent:    nodeIndent(outer),
			Verbatim:  true,
		})
	case "enum_declaration":
		parent.AddChild(&Node{
			Kind:      KindEnum,
			Name:      nodeName(n, source),
			Signature: outerSlice(n, outer, source),
			Indent:    nodeIndent(outer),
			Verbatim:  true,
		})
	case "type_alias_declaration", "lexical_declaration", "variable_declaration":
		// Type aliases and top-level const/let/var are kept verbatim.
		parent.AddChild(&Node{
			Kind:      KindModule,
			Signature: outerSlice(n, outer, source),
			Indent:    nodeIndent(outer),
			Verbatim:  true,
		})
	case "function_declaration", "generator_function_declaration":
		parent.AddChild(&Node{
			Kind:      KindFunction,
			Name:      nodeName(n, source),
			Signature: signatureTo(n, outer, source),
			Indent:    nodeIndent(outer),
		})
	}
}

// classNode converts a class declaration, surfacing member signatures.
func (p *typeScriptExtractor) classNode(n, outer *sitter.Node, source []byte) *Node {
	class := &Node{
		Kind:      KindClass,
		Name:      nodeName(n, source),
		Signature: signatureTo(n, outer, source),
		Indent:    nodeIndent(outer),
	}

	eachChild(n.ChildByFieldName("body"), func(member *sitter.Node) {
		switch member.Kind() {
		case "method_definition":
			class.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: signatureSlice(member, source),
				Indent:    nodeIndent(member),
				Verbatim:  !hasBody(member),
			})
		case "abstract_method_signature", "method_signature", "public_field_definition", "field_definition":
			class.AddChild(&Node{
				Kind:      KindMethod,
				Name:      nodeName(member, source),
				Signature: signatureSlice(member, source),
				Indent:    nodeIndent(member),
				Verbatim:  true,
			})
		}
	})

	return class
}

// outerSlice returns the full text of the declaration including any export
// wrapper in front of it.
func outerSlice(n, outer *sitter.Node, source []byte) string {
	return string(source[outer.StartByte():n.EndByte()])
}

// signatureTo returns the slice from the outer node start to the body start
// of n, trailing whitespace trimmed.
func signatureTo(n, outer *sitter.Node, source []byte) string {
	body := n.ChildByFieldName("body")
	if body == nil {
		return outerSlice(n, outer, source)
	}
	return trimSignature(string(source[outer.StartByte():body.StartByte()]))
}
