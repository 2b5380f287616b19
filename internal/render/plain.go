package render

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/contextpack/internal/assemble"
)

const plainRule = "================================================================"

func renderPlain(doc *assemble.Document) string {
	var b strings.Builder

	b.WriteString(plainRule + "\n")
	b.WriteString("Repository Context\n")
	b.WriteString(plainRule + "\n")
	b.WriteString(summaryText + "\n")

	if doc.Header != "" {
		fmt.Fprintf(&b, "\n%s\n", doc.Header)
	}
	if doc.Intent != "" {
		fmt.Fprintf(&b, "\nIntent:\n%s\n", doc.Intent)
	}

	for _, f := range doc.Files {
		fmt.Fprintf(&b, "\n%s\nFile: %s (%s)\n%s\n", plainRule, f.Path, f.Mode, plainRule)
		b.WriteString(f.Text)
		if !strings.HasSuffix(f.Text, "\n") {
			b.WriteString("\n")
		}
	}

	if doc.GitLog != "" {
		fmt.Fprintf(&b, "\n%s\nGit Logs\n%s\n%s\n", plainRule, plainRule, doc.GitLog)
	}
	if doc.GitDiff != "" {
		fmt.Fprintf(&b, "\n%s\nGit Diffs\n%s\n%s\n", plainRule, plainRule, doc.GitDiff)
	}

	fmt.Fprintf(&b, "\n%s\nStatistics\n%s\n", plainRule, plainRule)
	fmt.Fprintf(&b, "Total files: %d\n", doc.Stats.TotalFiles)
	fmt.Fprintf(&b, "Total chars: %d\n", doc.Stats.TotalChars)
	fmt.Fprintf(&b, "Total tokens: %d\n", doc.Stats.TotalTokens)
	for i, t := range doc.Stats.TopFiles {
		fmt.Fprintf(&b, "%d. %s (%d chars, %d tokens)\n", i+1, t.Path, t.CharCount, t.TokenCount)
	}

	return b.String()
}
