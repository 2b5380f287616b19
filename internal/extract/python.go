package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// pythonExtractor builds skeletons for Python files.
type pythonExtractor struct {
	*treeSitterExtractor
}

func newPythonExtractor() *pythonExtractor {
	lang := sitter.NewLanguage(python.Language())
	return &pythonExtractor{
		treeSitterExtractor: newTreeSitterExtractor(lang, "python"),
	}
}

func (p *pythonExtractor) extract(content []byte) (*Node, error) {
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

// statement handles one statement at module or class scope. Statements
// inside function bodies are never reached: function bodies are elided
// wholesale.
func (p *pythonExtractor) statement(n *sitter.Node, source []byte, parent *Node, inClass bool) {
	switch n.Kind() {
	case "decorated_definition":
		// Decorators belong to the signature.
		def := n.ChildByFieldName("definition")
		if def != nil {
			p.definition(def, n, source, parent, inClass)
		}
	case "class_definition", "function_definition":
		p.definition(n, n, source, parent, inClass)
	case "expression_statement":
		// Top-level assignments (constants, configuration) kept verbatim.
		if !inClass && firstChildKind(n) == "assignment" {
			parent.AddChild(&Node{
				Kind:      KindModule,
				Signature: trimSignature(nodeText(n, source)),
				Indent:    nodeIndent(n),
				Verbatim:  true,
			})
		}
	}
}

// definition converts a class or function definition. outer includes any
// decorators stacked above the def keyword.
func (p *pythonExtractor) definition(n, outer *sitter.Node, source []byte, parent *Node, inClass bool) {
	switch n.Kind() {
	case "class_definition":
		class := &Node{
			Kind:      KindClass,
			Name:      nodeName(n, source),
			Signature: signatureTo(n, outer, source),
			Indent:    nodeIndent(outer),
		}
		eachChild(n.ChildByFieldName("body"), func(member *sitter.Node) {
			p.statement(member, source, class, true)
		})
		parent.AddChild(class)
	case "function_definition":
		kind := KindFunction
		if inClass {
			kind = KindMethod
		}
		parent.AddChild(&Node{
			Kind:      kind,
			Name:      nodeName(n, source),
			Signature: signatureTo(n, outer, source),
			Indent:    nodeIndent(outer),
		})
	}
}

// firstChildKind returns the kind of the node's first child, if any.
func firstChildKind(n *sitter.Node) string {
	if n.ChildCount() == 0 {
		return ""
	}
	return n.Child(0).Kind()
}
