package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/contextpack/internal/language"
)

// Test Plan for the Go extractor:
// - Function skeleton keeps the signature, elides the body
// - Method skeleton carries the receiver in the signature
// - Struct, interface, const, and var declarations kept verbatim
// - Imports do not appear in the skeleton
// - Bodyless function declarations kept verbatim
// - Malformed source returns ErrParseFailed
// - Identical input yields identical output across runs

const goSample = `package calc

import "fmt"

// Pi is close enough.
const Pi = 3.14

var registry = map[string]int{}

type Point struct {
	X int
	Y int
}

type Adder interface {
	Add(a, b int) int
}

func add(a, b int) int {
	return a + b
}

func (p *Point) Norm() int {
	fmt.Println("norm")
	return p.X + p.Y
}
`

func TestGoExtractor_FunctionSkeleton(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()
	root, err := ex.Extract([]byte(goSample), language.Go)

	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, KindModule, root.Kind)
	assert.Equal(t, "package calc", root.Signature)

	text := Render(root, language.Go)

	assert.Contains(t, text, "func add(a, b int) int")
	assert.Contains(t, text, "{ "+BodyPlaceholder+" }")
	assert.NotContains(t, text, "return a + b")
}

func TestGoExtractor_MethodReceiver(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()
	root, err := ex.Extract([]byte(goSample), language.Go)
	require.NoError(t, err)

	text := Render(root, language.Go)

	assert.Contains(t, text, "func (p *Point) Norm() int")
	assert.NotContains(t, text, `fmt.Println("norm")`)
}

func TestGoExtractor_DeclarationsVerbatim(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()
	root, err := ex.Extract([]byte(goSample), language.Go)
	require.NoError(t, err)

	text := Render(root, language.Go)

	// Types, constants, and variables are API surface; their full
	// declarations survive.
	assert.Contains(t, text, "X int")
	assert.Contains(t, text, "Add(a, b int) int")
	assert.Contains(t, text, "const Pi = 3.14")
	assert.Contains(t, text, "var registry = map[string]int{}")
}

func TestGoExtractor_ImportsSkipped(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()
	root, err := ex.Extract([]byte(goSample), language.Go)
	require.NoError(t, err)

	text := Render(root, language.Go)
	assert.NotContains(t, text, `import "fmt"`)
}

func TestGoExtractor_BodylessFunction(t *testing.T) {
	t.Parallel()

	src := "package sys\n\nfunc now() int64\n"

	ex := NewExtractor()
	root, err := ex.Extract([]byte(src), language.Go)
	require.NoError(t, err)

	text := Render(root, language.Go)
	assert.Contains(t, text, "func now() int64")
	assert.NotContains(t, text, BodyPlaceholder)
}

func TestGoExtractor_ParseFailed(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()
	_, err := ex.Extract([]byte("package x\n\nfunc {{{"), language.Go)

	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestGoExtractor_Deterministic(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()

	first, err := ex.Extract([]byte(goSample), language.Go)
	require.NoError(t, err)
	second, err := ex.Extract([]byte(goSample), language.Go)
	require.NoError(t, err)

	assert.Equal(t, Render(first, language.Go), Render(second, language.Go))
}
