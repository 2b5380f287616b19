package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CONTEXTPACK_*)
// 2. Config file (.contextpack/config.yml or .contextpack/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".contextpack")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("CONTEXTPACK")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., CONTEXTPACK_OUTPUT_STYLE)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.file_path")
	v.BindEnv("output.style")
	v.BindEnv("output.compress")
	v.BindEnv("output.remove_comments")
	v.BindEnv("output.remove_empty_lines")
	v.BindEnv("output.show_line_numbers")
	v.BindEnv("output.top_files_length")
	v.BindEnv("intent")
	v.BindEnv("security.enable_security_check")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("output.file_path", defaults.Output.FilePath)
	v.SetDefault("output.style", defaults.Output.Style)
	v.SetDefault("output.compress", defaults.Output.Compress)
	v.SetDefault("output.remove_comments", defaults.Output.RemoveComments)
	v.SetDefault("output.remove_empty_lines", defaults.Output.RemoveEmptyLines)
	v.SetDefault("output.show_line_numbers", defaults.Output.ShowLineNumbers)
	v.SetDefault("output.top_files_length", defaults.Output.TopFilesLength)
	v.SetDefault("output.copy_to_clipboard", defaults.Output.CopyToClipboard)
	v.SetDefault("output.include_diffs", defaults.Output.IncludeDiffs)
	v.SetDefault("output.include_logs", defaults.Output.IncludeLogs)
	v.SetDefault("output.header_text", defaults.Output.HeaderText)
	v.SetDefault("output.instruction_file_path", defaults.Output.InstructionFilePath)

	v.SetDefault("include", defaults.Include)
	v.SetDefault("focus", defaults.Focus)
	v.SetDefault("intent", defaults.Intent)

	v.SetDefault("ignore.use_gitignore", defaults.Ignore.UseGitignore)
	v.SetDefault("ignore.use_default_patterns", defaults.Ignore.UseDefaultPatterns)
	v.SetDefault("ignore.custom_patterns", defaults.Ignore.CustomPatterns)

	v.SetDefault("security.enable_security_check", defaults.Security.EnableSecurityCheck)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
