package assemble

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/contextpack/internal/language"
	"github.com/mvp-joe/contextpack/internal/walker"
)

// Test Plan for the assembler:
// - Compression off: every file renders full
// - Compression on: supported files render as skeletons without bodies
// - Focus set forces full text regardless of compression
// - Unsupported language always renders full
// - Security-rejected files are excluded entirely
// - File order matches input order despite the worker pool
// - Stats: summed counts and char-ranked top files with lexical tie-break
// - Counter is applied per rendered file
// - Identical inputs produce identical documents

// charCounter counts one token per byte so token assertions are exact.
type charCounter struct{}

func (charCounter) Count(text string) int { return len(text) }

// denyPaths rejects a fixed set of paths.
type denyPaths map[string]bool

func (d denyPaths) IsSafe(path, content string) bool { return !d[path] }

func goFile(path, body string) SourceFile {
	return SourceFile{
		Path:     path,
		Language: language.Go,
		Content:  []byte("package x\n\nfunc add(a, b int) int {\n\treturn " + body + "\n}\n"),
	}
}

func textFile(path, content string) SourceFile {
	return SourceFile{Path: path, Language: language.Unknown, Content: []byte(content)}
}

func newTestAssembler(scannerDenies denyPaths) *Assembler {
	return New(charCounter{}, scannerDenies, NoProgress())
}

func TestAssemble_CompressionOff(t *testing.T) {
	t.Parallel()

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), []SourceFile{goFile("a.go", "a + b")}, Options{})

	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, ModeFull, doc.Files[0].Mode)
	assert.Contains(t, doc.Files[0].Text, "a + b")
}

func TestAssemble_SkeletonElidesBody(t *testing.T) {
	t.Parallel()

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), []SourceFile{goFile("a.go", "a + b")}, Options{Compress: true})

	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, ModeSkeleton, doc.Files[0].Mode)
	assert.Contains(t, doc.Files[0].Text, "func add(a, b int) int")
	assert.NotContains(t, doc.Files[0].Text, "a + b")
}

func TestAssemble_FocusForcesFull(t *testing.T) {
	t.Parallel()

	focus, err := walker.CompilePatterns([]string{"a.go"})
	require.NoError(t, err)

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), []SourceFile{goFile("a.go", "a + b")}, Options{
		Compress: true,
		FocusSet: focus,
	})

	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, ModeFull, doc.Files[0].Mode)
	assert.Contains(t, doc.Files[0].Text, "a + b")
}

func TestAssemble_UnsupportedLanguageFull(t *testing.T) {
	t.Parallel()

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), []SourceFile{textFile("notes.txt", "remember the milk\n")}, Options{Compress: true})

	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, ModeFull, doc.Files[0].Mode)
	assert.Equal(t, "remember the milk\n", doc.Files[0].Text)
}

func TestAssemble_SecurityExclusion(t *testing.T) {
	t.Parallel()

	asm := newTestAssembler(denyPaths{"env.sh": true})
	doc, err := asm.Assemble(context.Background(), []SourceFile{
		textFile("env.sh", "TOKEN=hunter2\n"),
		textFile("ok.txt", "fine\n"),
	}, Options{})

	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, "ok.txt", doc.Files[0].Path)
	assert.Equal(t, 1, doc.Stats.TotalFiles)
}

func TestAssemble_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	var files []SourceFile
	want := []string{"z.txt", "m.txt", "a.txt", "q.txt", "b.txt"}
	for _, p := range want {
		files = append(files, textFile(p, strings.Repeat(p, 3)))
	}

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), files, Options{})
	require.NoError(t, err)

	var got []string
	for _, f := range doc.Files {
		got = append(got, f.Path)
	}
	assert.Equal(t, want, got)
}

func TestAssemble_Stats(t *testing.T) {
	t.Parallel()

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), []SourceFile{
		textFile("big.txt", strings.Repeat("x", 200)),
		textFile("small.txt", strings.Repeat("y", 50)),
	}, Options{TopFilesLength: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, doc.Stats.TotalFiles)
	assert.Equal(t, 250, doc.Stats.TotalChars)
	assert.Equal(t, 250, doc.Stats.TotalTokens)
	require.Len(t, doc.Stats.TopFiles, 1)
	assert.Equal(t, "big.txt", doc.Stats.TopFiles[0].Path)
	assert.Equal(t, 200, doc.Stats.TopFiles[0].CharCount)
}

func TestAssemble_StatsLexicalTieBreak(t *testing.T) {
	t.Parallel()

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), []SourceFile{
		textFile("zeta.txt", "same"),
		textFile("alpha.txt", "same"),
	}, Options{TopFilesLength: 2})

	require.NoError(t, err)
	require.Len(t, doc.Stats.TopFiles, 2)
	assert.Equal(t, "alpha.txt", doc.Stats.TopFiles[0].Path)
	assert.Equal(t, "zeta.txt", doc.Stats.TopFiles[1].Path)
}

func TestAssemble_Deterministic(t *testing.T) {
	t.Parallel()

	files := []SourceFile{
		goFile("a.go", "a + b"),
		textFile("b.txt", "plain\n"),
		goFile("c.go", "a * b"),
	}
	opts := Options{Compress: true, TopFilesLength: 3, Intent: "do the thing"}

	asm := newTestAssembler(nil)
	first, err := asm.Assemble(context.Background(), files, opts)
	require.NoError(t, err)
	second, err := asm.Assemble(context.Background(), files, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemble_NormalizationAndLineNumbers(t *testing.T) {
	t.Parallel()

	file := SourceFile{
		Path:     "a.go",
		Language: language.Go,
		Content:  []byte("package x\n\n// TODO drop me\nfunc f() {}\n"),
	}

	asm := newTestAssembler(nil)
	doc, err := asm.Assemble(context.Background(), []SourceFile{file}, Options{
		RemoveComments:   true,
		RemoveEmptyLines: true,
		ShowLineNumbers:  true,
	})

	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	text := doc.Files[0].Text
	assert.NotContains(t, text, "TODO")
	assert.Contains(t, text, "1: package x")
	assert.Contains(t, text, "2: func f() {}")
}
