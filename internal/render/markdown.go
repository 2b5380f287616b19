package render

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/contextpack/internal/assemble"
)

func renderMarkdown(doc *assemble.Document) string {
	var b strings.Builder

	b.WriteString("# Repository Context\n\n")
	b.WriteString(summaryText)
	b.WriteString("\n")

	if doc.Header != "" {
		fmt.Fprintf(&b, "\n%s\n", doc.Header)
	}
	if doc.Intent != "" {
		fmt.Fprintf(&b, "\n## Intent\n\n%s\n", doc.Intent)
	}

	b.WriteString("\n## Files\n")
	for _, f := range doc.Files {
		fence := fenceFor(f.Text)
		fmt.Fprintf(&b, "\n### %s (%s)\n\n", f.Path, f.Mode)
		fmt.Fprintf(&b, "%s%s\n", fence, f.Language)
		b.WriteString(f.Text)
		if !strings.HasSuffix(f.Text, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(fence)
		b.WriteString("\n")
	}

	if doc.GitLog != "" {
		fence := fenceFor(doc.GitLog)
		fmt.Fprintf(&b, "\n## Git Logs\n\n%s\n%s\n%s\n", fence, doc.GitLog, fence)
	}
	if doc.GitDiff != "" {
		fence := fenceFor(doc.GitDiff)
		fmt.Fprintf(&b, "\n## Git Diffs\n\n%s\n%s\n%s\n", fence, doc.GitDiff, fence)
	}

	b.WriteString("\n## Statistics\n\n")
	fmt.Fprintf(&b, "- Total files: %d\n", doc.Stats.TotalFiles)
	fmt.Fprintf(&b, "- Total chars: %d\n", doc.Stats.TotalChars)
	fmt.Fprintf(&b, "- Total tokens: %d\n", doc.Stats.TotalTokens)
	if len(doc.Stats.TopFiles) > 0 {
		b.WriteString("\nTop files by size:\n\n")
		for i, t := range doc.Stats.TopFiles {
			fmt.Fprintf(&b, "%d. %s (%d chars, %d tokens)\n", i+1, t.Path, t.CharCount, t.TokenCount)
		}
	}

	return b.String()
}

// fenceFor picks a backtick fence wider than any backtick run in content,
// so the fenced block can never be terminated early.
func fenceFor(content string) string {
	longest := 0
	run := 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	width := 3
	if longest >= width {
		width = longest + 1
	}
	return strings.Repeat("`", width)
}
