package render

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/contextpack/internal/assemble"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func renderXML(doc *assemble.Document) string {
	var b strings.Builder

	b.WriteString("<file_summary>\n")
	b.WriteString(summaryText)
	b.WriteString("\n</file_summary>\n")

	if doc.Header != "" {
		fmt.Fprintf(&b, "\n<header>\n%s\n</header>\n", xmlEscaper.Replace(doc.Header))
	}
	if doc.Intent != "" {
		fmt.Fprintf(&b, "\n<intent>\n%s\n</intent>\n", xmlEscaper.Replace(doc.Intent))
	}

	b.WriteString("\n<repository_files>\n")
	for _, f := range doc.Files {
		fmt.Fprintf(&b, "<file path=\"%s\" mode=\"%s\">\n", xmlEscaper.Replace(f.Path), f.Mode)
		b.WriteString(xmlEscaper.Replace(f.Text))
		if !strings.HasSuffix(f.Text, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("</file>\n")
	}
	b.WriteString("</repository_files>\n")

	if doc.GitLog != "" {
		fmt.Fprintf(&b, "\n<git_logs>\n%s\n</git_logs>\n", xmlEscaper.Replace(doc.GitLog))
	}
	if doc.GitDiff != "" {
		fmt.Fprintf(&b, "\n<git_diffs>\n%s\n</git_diffs>\n", xmlEscaper.Replace(doc.GitDiff))
	}

	b.WriteString("\n<statistics>\n")
	fmt.Fprintf(&b, "<total_files>%d</total_files>\n", doc.Stats.TotalFiles)
	fmt.Fprintf(&b, "<total_chars>%d</total_chars>\n", doc.Stats.TotalChars)
	fmt.Fprintf(&b, "<total_tokens>%d</total_tokens>\n", doc.Stats.TotalTokens)
	for _, t := range doc.Stats.TopFiles {
		fmt.Fprintf(&b, "<top_file path=\"%s\" chars=\"%d\" tokens=\"%d\"/>\n", xmlEscaper.Replace(t.Path), t.CharCount, t.TokenCount)
	}
	b.WriteString("</statistics>\n")

	return b.String()
}
