package assemble

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/contextpack/internal/language"
)

// Load reads each discovered path under root into a SourceFile, detecting
// its language. Binary files are skipped. Input order is preserved.
func Load(root string, paths []string) ([]SourceFile, error) {
	files := make([]SourceFile, 0, len(paths))
	for _, relPath := range paths {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
		if err != nil {
			return nil, fmt.Errorf("assemble: read %s: %w", relPath, err)
		}
		if language.IsBinary(content) {
			continue
		}
		files = append(files, SourceFile{
			Path:     relPath,
			Language: language.Detect(relPath),
			Content:  content,
		})
	}
	return files, nil
}
