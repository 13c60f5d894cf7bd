// Package config loads and validates the fmtgate configuration.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fmtgate/fmtgate/internal/fs"
)

// FmtgateConfigFile is the config file name looked up in the working directory.
const FmtgateConfigFile = "fmtgate.yml"

// ConfigEnvVar overrides the config file location when set.
const ConfigEnvVar = "FMTGATE_CONFIG"

const DefaultConfigContent = `# fmtgate configuration

# SOURCE DIRECTORIES
#
# Directories scanned (recursively) for source files. Order matters: files are
# visited directory by directory in the order listed here. Paths are relative
# to the directory fmtgate runs in.
sourceDirs:
  - src

# FILE EXTENSIONS
#
# Only files whose name ends in one of these extensions are formatted or
# checked. Everything else is never visited.
extensions:
  - .cpp
  - .h
  - .hpp
  - .cc
  - .cxx

# FORMATTER
#
# executable: name (or path) of the clang-format binary. A bare name is first
#             looked up next to the fmtgate binary itself, then on PATH.
# style:      value passed as -style=<value>. "file" uses the .clang-format
#             discovered from each source file's location.
formatter:
  executable: clang-format
  style: file
`

// FormatterConfig describes how the external formatter is invoked.
type FormatterConfig struct {
	Executable string `yaml:"executable"`
	Style      string `yaml:"style"`
}

// Config is the resolved fmtgate configuration. It is immutable after Load.
type Config struct {
	SourceDirs []string        `yaml:"sourceDirs"`
	Extensions []string        `yaml:"extensions"`
	Formatter  FormatterConfig `yaml:"formatter"`
}

// Default returns the compiled-in configuration used when no fmtgate.yml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, schema-validates and unmarshals the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &MissingConfigError{Path: path}
	}
	if err != nil {
		return nil, err
	}

	if vErr := validateDocument(data); vErr != nil {
		return nil, vErr
	}

	var cfg Config
	if uErr := yaml.Unmarshal(data, &cfg); uErr != nil {
		return nil, &InvalidYAMLError{Wrapped: uErr}
	}

	cfg.applyDefaults()
	if vErr := cfg.Validate(); vErr != nil {
		return nil, vErr
	}

	return &cfg, nil
}

// Resolve determines which configuration to use, in order of precedence:
// an explicit --config path, the ConfigEnvVar environment variable, a
// fmtgate.yml in the working directory, and finally the compiled-in defaults.
// An explicitly named file must exist; the working-directory file is optional.
func Resolve(explicit string, env fs.EnvProvider) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if envPath := env.Get(ConfigEnvVar); envPath != "" {
		return Load(envPath)
	}
	if fs.FileExists(FmtgateConfigFile) {
		return Load(FmtgateConfigFile)
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if len(c.SourceDirs) == 0 {
		c.SourceDirs = []string{"src"}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".cpp", ".h", ".hpp", ".cc", ".cxx"}
	}
	if c.Formatter.Executable == "" {
		c.Formatter.Executable = "clang-format"
	}
	if c.Formatter.Style == "" {
		c.Formatter.Style = "file"
	}
}

// Validate checks constraints the schema cannot express on the merged config.
func (c *Config) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return &InvalidExtensionError{Value: ext}
		}
	}
	if slices.Contains(c.SourceDirs, "") {
		return &MissingPropertyError{Property: "sourceDirs"}
	}
	if dup := firstDuplicate(c.SourceDirs); dup != "" {
		return &DuplicateSourceDirError{Path: dup}
	}
	return nil
}

func firstDuplicate(dirs []string) string {
	seen := make([]string, 0, len(dirs))
	for _, d := range dirs {
		clean := filepath.Clean(d)
		if slices.Contains(seen, clean) {
			return d
		}
		seen = append(seen, clean)
	}
	return ""
}
