package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidStyle indicates an unsupported output style
	ErrInvalidStyle = errors.New("invalid output style")

	// ErrEmptyFilePath indicates a missing output file path
	ErrEmptyFilePath = errors.New("empty output file path")

	// ErrInvalidTopFiles indicates an invalid top-files length
	ErrInvalidTopFiles = errors.New("invalid top files length")
)

var validStyles = map[string]bool{
	"xml":      true,
	"markdown": true,
	"json":     true,
	"plain":    true,
}

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if !validStyles[strings.ToLower(cfg.Output.Style)] {
		errs = append(errs, fmt.Errorf("%w: must be one of xml, markdown, json, plain, got '%s'", ErrInvalidStyle, cfg.Output.Style))
	}

	if strings.TrimSpace(cfg.Output.FilePath) == "" {
		errs = append(errs, fmt.Errorf("%w: file path is required ('-' for stdout)", ErrEmptyFilePath))
	}

	if cfg.Output.TopFilesLength < 0 {
		errs = append(errs, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidTopFiles, cfg.Output.TopFilesLength))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
