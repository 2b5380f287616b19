package extract

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// goExtractor builds skeletons for Go files using go/ast; the standard
// toolchain parser is exact where a grammar would only approximate.
type goExtractor struct{}

func newGoExtractor() *goExtractor {
	return &goExtractor{}
}

func (g *goExtractor) extract(content []byte) (*Node, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", content, parser.SkipObjectResolution)
	if err != nil {
		return nil, ErrParseFailed
	}

	root := &Node{
		Kind:      KindModule,
		Name:      file.Name.Name,
		Signature: "package " + file.Name.Name,
		Verbatim:  true,
	}

	offset := func(pos token.Pos) int {
		return fset.Position(pos).Offset
	}
	column := func(pos token.Pos) int {
		return fset.Position(pos).Column - 1
	}
	slice := func(from, to token.Pos) string {
		return strings.TrimRight(string(content[offset(from):offset(to)]), " \t\n")
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			node := g.genDeclNode(d, slice, column)
			if node != nil {
				root.AddChild(node)
			}
		case *ast.FuncDecl:
			root.AddChild(g.funcDeclNode(d, slice, column))
		}
	}

	return root, nil
}

// genDeclNode converts a type/const/var declaration. Type and value
// declarations carry no executable bodies, so they are kept verbatim:
// struct fields and interface method signatures are exactly the API
// surface a skeleton should show.
func (g *goExtractor) genDeclNode(d *ast.GenDecl, slice func(token.Pos, token.Pos) string, column func(token.Pos) int) *Node {
	switch d.Tok {
	case token.TYPE:
		kind := KindModule
		name := ""
		if len(d.Specs) == 1 {
			if spec, ok := d.Specs[0].(*ast.TypeSpec); ok {
				name = spec.Name.Name
				switch spec.Type.(type) {
				case *ast.StructType:
					kind = KindStruct
				case *ast.InterfaceType:
					kind = KindInterface
				}
			}
		}
		return &Node{
			Kind:      kind,
			Name:      name,
			Signature: slice(d.Pos(), d.End()),
			Indent:    column(d.Pos()),
			Verbatim:  true,
		}
	case token.CONST, token.VAR:
		return &Node{
			Kind:      KindModule,
			Signature: slice(d.Pos(), d.End()),
			Indent:    column(d.Pos()),
			Verbatim:  true,
		}
	default:
		// Imports are structural noise in a skeleton.
		return nil
	}
}

// funcDeclNode converts a function or method declaration. The signature is
// the exact source up to the opening brace; the body is elided.
func (g *goExtractor) funcDeclNode(d *ast.FuncDecl, slice func(token.Pos, token.Pos) string, column func(token.Pos) int) *Node {
	kind := KindFunction
	if d.Recv != nil && len(d.Recv.List) > 0 {
		kind = KindMethod
	}

	if d.Body == nil {
		// Assembly-backed or external declaration: no body to elide.
		return &Node{
			Kind:      kind,
			Name:      d.Name.Name,
			Signature: slice(d.Pos(), d.End()),
			Indent:    column(d.Pos()),
			Verbatim:  true,
		}
	}

	return &Node{
		Kind:      kind,
		Name:      d.Name.Name,
		Signature: slice(d.Pos(), d.Body.Lbrace),
		Indent:    column(d.Pos()),
	}
}
