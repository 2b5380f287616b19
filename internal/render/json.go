package render

import (
	"encoding/json"
	"fmt"

	"github.com/mvp-joe/contextpack/internal/assemble"
)

// jsonDocument mirrors assemble.Document with stable lower-case keys.
// Slices are forced non-nil so an empty document still serializes as valid
// JSON with empty arrays rather than nulls.
type jsonDocument struct {
	Summary string     `json:"summary"`
	Header  string     `json:"header,omitempty"`
	Intent  string     `json:"intent,omitempty"`
	Files   []jsonFile `json:"files"`
	GitLog  string     `json:"git_log,omitempty"`
	GitDiff string     `json:"git_diff,omitempty"`
	Stats   jsonStats  `json:"stats"`
}

type jsonFile struct {
	Path       string `json:"path"`
	Language   string `json:"language"`
	Mode       string `json:"mode"`
	Content    string `json:"content"`
	CharCount  int    `json:"char_count"`
	TokenCount int    `json:"token_count"`
}

type jsonStats struct {
	TotalFiles  int           `json:"total_files"`
	TotalChars  int           `json:"total_chars"`
	TotalTokens int           `json:"total_tokens"`
	TopFiles    []jsonTopFile `json:"top_files"`
}

type jsonTopFile struct {
	Path       string `json:"path"`
	CharCount  int    `json:"char_count"`
	TokenCount int    `json:"token_count"`
}

func renderJSON(doc *assemble.Document) (string, error) {
	out := jsonDocument{
		Summary: summaryText,
		Header:  doc.Header,
		Intent:  doc.Intent,
		Files:   make([]jsonFile, 0, len(doc.Files)),
		GitLog:  doc.GitLog,
		GitDiff: doc.GitDiff,
		Stats: jsonStats{
			TotalFiles:  doc.Stats.TotalFiles,
			TotalChars:  doc.Stats.TotalChars,
			TotalTokens: doc.Stats.TotalTokens,
			TopFiles:    make([]jsonTopFile, 0, len(doc.Stats.TopFiles)),
		},
	}

	for _, f := range doc.Files {
		out.Files = append(out.Files, jsonFile{
			Path:       f.Path,
			Language:   f.Language,
			Mode:       string(f.Mode),
			Content:    f.Text,
			CharCount:  f.CharCount,
			TokenCount: f.TokenCount,
		})
	}
	for _, t := range doc.Stats.TopFiles {
		out.Stats.TopFiles = append(out.Stats.TopFiles, jsonTopFile(t))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: marshal json: %w", err)
	}
	return string(data) + "\n", nil
}
