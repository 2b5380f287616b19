package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/contextpack/internal/language"
)

// Test Plan for the tree-sitter extractors:
// - Each language keeps declaration signatures and elides bodies
// - Exported/decorated declarations keep their modifiers in the signature
// - Class members are surfaced as children at their original indentation
// - JavaScript routes through the TypeScript grammar
// - Unsupported language tag returns ErrUnsupportedLanguage
// - Malformed source returns ErrParseFailed

func extractAndRender(t *testing.T, src, lang string) string {
	t.Helper()

	ex := NewExtractor()
	root, err := ex.Extract([]byte(src), lang)
	require.NoError(t, err)
	require.NotNil(t, root)

	return Render(root, lang)
}

func TestTypeScriptExtractor_Skeleton(t *testing.T) {
	t.Parallel()

	src := `export function add(a: number, b: number): number {
  return a + b;
}

class Greeter {
  prefix: string = "hi ";

  greet(name: string): string {
    return this.prefix + name;
  }
}

export interface Named {
  name: string;
}
`
	text := extractAndRender(t, src, language.TypeScript)

	assert.Contains(t, text, "export function add(a: number, b: number): number")
	assert.Contains(t, text, "class Greeter")
	assert.Contains(t, text, "greet(name: string): string")
	assert.Contains(t, text, "name: string;")
	assert.NotContains(t, text, "return a + b")
	assert.NotContains(t, text, "this.prefix + name")
}

func TestJavaScriptExtractor_UsesTypeScriptGrammar(t *testing.T) {
	t.Parallel()

	src := `function add(a, b) {
  return a + b;
}
`
	text := extractAndRender(t, src, language.JavaScript)

	assert.Contains(t, text, "function add(a, b)")
	assert.NotContains(t, text, "return a + b")
}

func TestPythonExtractor_Skeleton(t *testing.T) {
	t.Parallel()

	src := `import os

MAX_RETRIES = 3

@cached
def add(a, b):
    return a + b

class Greeter:
    def greet(self, name):
        return "hi " + name
`
	text := extractAndRender(t, src, language.Python)

	assert.Contains(t, text, "@cached")
	assert.Contains(t, text, "def add(a, b):")
	assert.Contains(t, text, "class Greeter:")
	assert.Contains(t, text, "def greet(self, name):")
	assert.Contains(t, text, "MAX_RETRIES = 3")
	assert.NotContains(t, text, "return a + b")
	assert.NotContains(t, text, `"hi " + name`)
}

func TestRustExtractor_Skeleton(t *testing.T) {
	t.Parallel()

	src := `pub struct Point {
    pub x: i32,
    pub y: i32,
}

impl Point {
    pub fn norm(&self) -> i32 {
        self.x + self.y
    }
}

pub trait Adder {
    fn add(&self, a: i32, b: i32) -> i32;
}

pub fn add(a: i32, b: i32) -> i32 {
    a + b
}
`
	text := extractAndRender(t, src, language.Rust)

	assert.Contains(t, text, "pub struct Point")
	assert.Contains(t, text, "pub fn norm(&self) -> i32")
	assert.Contains(t, text, "fn add(&self, a: i32, b: i32) -> i32;")
	assert.Contains(t, text, "pub fn add(a: i32, b: i32) -> i32")
	assert.NotContains(t, text, "self.x + self.y")
	assert.NotContains(t, text, "a + b\n")
}

func TestJavaExtractor_Skeleton(t *testing.T) {
	t.Parallel()

	src := `public class Calculator {
    private int total;

    public int add(int a, int b) {
        return a + b;
    }
}
`
	text := extractAndRender(t, src, language.Java)

	assert.Contains(t, text, "public class Calculator")
	assert.Contains(t, text, "private int total;")
	assert.Contains(t, text, "public int add(int a, int b)")
	assert.NotContains(t, text, "return a + b")
}

func TestCExtractor_Skeleton(t *testing.T) {
	t.Parallel()

	src := `struct point { int x; int y; };

int add(int a, int b) {
    return a + b;
}
`
	text := extractAndRender(t, src, language.C)

	assert.Contains(t, text, "struct point { int x; int y; }")
	assert.Contains(t, text, "int add(int a, int b)")
	assert.NotContains(t, text, "return a + b")
}

func TestPHPExtractor_Skeleton(t *testing.T) {
	t.Parallel()

	src := `<?php

class Greeter {
    public function greet(string $name): string {
        return "hi " . $name;
    }
}

function add(int $a, int $b): int {
    return $a + $b;
}
`
	text := extractAndRender(t, src, language.PHP)

	assert.Contains(t, text, "<?php")
	assert.Contains(t, text, "class Greeter")
	assert.Contains(t, text, "public function greet(string $name): string")
	assert.Contains(t, text, "function add(int $a, int $b): int")
	assert.NotContains(t, text, "return $a + $b")
}

func TestRubyExtractor_Skeleton(t *testing.T) {
	t.Parallel()

	src := `class Greeter
  def greet(name)
    "hi " + name
  end
end

def add(a, b)
  a + b
end
`
	text := extractAndRender(t, src, language.Ruby)

	assert.Contains(t, text, "class Greeter")
	assert.Contains(t, text, "def greet(name)")
	assert.Contains(t, text, "def add(a, b)")
	assert.Contains(t, text, BodyPlaceholder)
	assert.NotContains(t, text, `"hi " + name`)
}

func TestExtractor_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()

	_, err := ex.Extract([]byte("hello"), language.Unknown)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.False(t, ex.SupportsLanguage(language.Unknown))
	assert.True(t, ex.SupportsLanguage(language.Go))
}

func TestExtractor_MalformedSource(t *testing.T) {
	t.Parallel()

	ex := NewExtractor()

	_, err := ex.Extract([]byte("def broken(:\n"), language.Python)
	assert.ErrorIs(t, err, ErrParseFailed)
}
