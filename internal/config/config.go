package config

// Config represents the complete contextpack configuration.
// It can be loaded from .contextpack/config.yml with environment variable
// overrides.
type Config struct {
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Include  []string       `yaml:"include" mapstructure:"include"`
	Focus    []string       `yaml:"focus" mapstructure:"focus"`   // glob patterns forced to full text
	Intent   string         `yaml:"intent" mapstructure:"intent"` // task description: literal text, file, or directory
	Ignore   IgnoreConfig   `yaml:"ignore" mapstructure:"ignore"`
	Security SecurityConfig `yaml:"security" mapstructure:"security"`
}

// OutputConfig controls what the generated document contains and where it
// goes.
type OutputConfig struct {
	FilePath            string `yaml:"file_path" mapstructure:"file_path"`                         // "-" writes to stdout
	Style               string `yaml:"style" mapstructure:"style"`                                 // xml, markdown, json, or plain
	Compress            bool   `yaml:"compress" mapstructure:"compress"`                           // skeleton rendering for unfocused files
	RemoveComments      bool   `yaml:"remove_comments" mapstructure:"remove_comments"`
	RemoveEmptyLines    bool   `yaml:"remove_empty_lines" mapstructure:"remove_empty_lines"`
	ShowLineNumbers     bool   `yaml:"show_line_numbers" mapstructure:"show_line_numbers"`
	TopFilesLength      int    `yaml:"top_files_length" mapstructure:"top_files_length"`           // entries in the top-files ranking
	CopyToClipboard     bool   `yaml:"copy_to_clipboard" mapstructure:"copy_to_clipboard"`
	IncludeDiffs        bool   `yaml:"include_diffs" mapstructure:"include_diffs"`                 // attach git diff block
	IncludeLogs         bool   `yaml:"include_logs" mapstructure:"include_logs"`                   // attach git log block
	HeaderText          string `yaml:"header_text" mapstructure:"header_text"`                     // free-form preamble
	InstructionFilePath string `yaml:"instruction_file_path" mapstructure:"instruction_file_path"` // file whose content joins the header
}

// IgnoreConfig defines which files are excluded from packing.
type IgnoreConfig struct {
	UseGitignore       bool     `yaml:"use_gitignore" mapstructure:"use_gitignore"`
	UseDefaultPatterns bool     `yaml:"use_default_patterns" mapstructure:"use_default_patterns"`
	CustomPatterns     []string `yaml:"custom_patterns" mapstructure:"custom_patterns"`
}

// SecurityConfig controls secret scanning.
type SecurityConfig struct {
	EnableSecurityCheck bool `yaml:"enable_security_check" mapstructure:"enable_security_check"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			FilePath:         "contextpack-output.xml",
			Style:            "xml",
			Compress:         false,
			RemoveComments:   false,
			RemoveEmptyLines: false,
			ShowLineNumbers:  false,
			TopFilesLength:   5,
		},
		Include: []string{},
		Focus:   []string{},
		Ignore: IgnoreConfig{
			UseGitignore:       true,
			UseDefaultPatterns: true,
			CustomPatterns:     []string{},
		},
		Security: SecurityConfig{
			EnableSecurityCheck: true,
		},
	}
}
