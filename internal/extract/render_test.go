package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvp-joe/contextpack/internal/language"
)

// Test Plan for skeleton rendering:
// - Brace languages frame the placeholder as "{ ... }"
// - Python appends the placeholder after the colon-terminated signature
// - Ruby closes the elided body with "end"
// - Verbatim nodes render their signature unchanged
// - Containers reopen the body, render members, and close it
// - Nil and empty trees render to empty output

func TestRender_BraceFraming(t *testing.T) {
	t.Parallel()

	root := &Node{Kind: KindModule}
	root.AddChild(&Node{Kind: KindFunction, Name: "add", Signature: "func add(a, b int) int"})

	text := Render(root, language.Go)
	assert.Equal(t, "\nfunc add(a, b int) int { ... }\n", text)
}

func TestRender_PythonFraming(t *testing.T) {
	t.Parallel()

	root := &Node{Kind: KindModule}
	root.AddChild(&Node{Kind: KindFunction, Name: "add", Signature: "def add(a, b):"})

	text := Render(root, language.Python)
	assert.Equal(t, "\ndef add(a, b): ...\n", text)
}

func TestRender_RubyFraming(t *testing.T) {
	t.Parallel()

	root := &Node{Kind: KindModule}
	root.AddChild(&Node{Kind: KindFunction, Name: "add", Signature: "def add(a, b)"})

	text := Render(root, language.Ruby)
	assert.Equal(t, "\ndef add(a, b)\n  ...\nend\n", text)
}

func TestRender_ContainerWithMembers(t *testing.T) {
	t.Parallel()

	class := &Node{Kind: KindClass, Name: "Greeter", Signature: "class Greeter"}
	class.AddChild(&Node{Kind: KindMethod, Name: "greet", Signature: "greet(name)", Indent: 2})

	root := &Node{Kind: KindModule}
	root.AddChild(class)

	text := Render(root, language.TypeScript)
	assert.Equal(t, "\nclass Greeter {\n  greet(name) { ... }\n}\n", text)
}

func TestRender_Verbatim(t *testing.T) {
	t.Parallel()

	root := &Node{Kind: KindModule}
	root.AddChild(&Node{Kind: KindModule, Signature: "const Pi = 3.14", Verbatim: true})

	text := Render(root, language.Go)
	assert.Equal(t, "\nconst Pi = 3.14\n", text)
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Render(nil, language.Go))
	assert.Equal(t, "", Render(&Node{Kind: KindModule}, language.Go))
}
