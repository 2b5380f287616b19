package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// writeOutput delivers the rendered document. "-" writes to stdout;
// otherwise the file is written via a temp file in the destination
// directory and renamed into place, so a cancelled or failed run never
// leaves partial output.
func writeOutput(text, path string, copyToClipboard bool) error {
	if copyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	if path == "-" {
		_, err := os.Stdout.WriteString(text)
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".contextpack-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}
