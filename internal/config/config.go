package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-fonema/internal/fileutil"
	"github.com/alnah/go-fonema/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrEnvParse        = errors.New("failed to parse environment")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FONEMA_"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Limits checked by Validate.
const (
	MaxPathLength   = 4096
	MaxWorkers      = 32
	MinChunkBytes   = 100
	MaxChunkBytes   = 1 << 20
	MaxSectionDepth = 6
)

// Config holds all configuration for the fonema CLI.
type Config struct {
	Input    InputConfig    `yaml:"input" envPrefix:"INPUT_"`
	Output   OutputConfig   `yaml:"output" envPrefix:"OUTPUT_"`
	Cleaning CleaningConfig `yaml:"cleaning" envPrefix:"CLEANING_"`
	Sections SectionsConfig `yaml:"sections" envPrefix:"SECTIONS_"`
	Chunking ChunkingConfig `yaml:"chunking" envPrefix:"CHUNKING_"`
	Workers  int            `yaml:"workers" env:"WORKERS"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir" env:"DIR"` // Used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" env:"DIR"` // Empty = next to the source
	Format     string `yaml:"format" env:"FORMAT"`   // "text" or "yaml"
}

// CleaningConfig toggles the optional cleaning stages.
type CleaningConfig struct {
	Emoji        bool `yaml:"emoji" env:"EMOJI"`
	AnnounceCode bool `yaml:"announceCode" env:"ANNOUNCE_CODE"`
}

// SectionsConfig controls splitting articles at headings.
type SectionsConfig struct {
	Enabled  bool `yaml:"enabled" env:"ENABLED"`
	MaxDepth int  `yaml:"maxDepth" env:"MAX_DEPTH"` // 1-6, 0 = library default
}

// ChunkingConfig controls splitting cleaned text for synthesis requests.
type ChunkingConfig struct {
	Enabled  bool `yaml:"enabled" env:"ENABLED"`
	MaxBytes int  `yaml:"maxBytes" env:"MAX_BYTES"` // 0 = library default
}

// DefaultConfig returns plain text output with optional stages disabled.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatText},
	}
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig and ApplyEnv.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Output.Format) {
	case "", FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q (must be text or yaml)", ErrInvalidValue, c.Output.Format)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if c.Sections.MaxDepth != 0 && (c.Sections.MaxDepth < 1 || c.Sections.MaxDepth > MaxSectionDepth) {
		return fmt.Errorf("%w: sections.maxDepth must be between 1 and %d, got %d", ErrInvalidValue, MaxSectionDepth, c.Sections.MaxDepth)
	}
	if c.Chunking.MaxBytes != 0 && (c.Chunking.MaxBytes < MinChunkBytes || c.Chunking.MaxBytes > MaxChunkBytes) {
		return fmt.Errorf("%w: chunking.maxBytes must be between %d and %d, got %d", ErrInvalidValue, MinChunkBytes, MaxChunkBytes, c.Chunking.MaxBytes)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// ApplyEnv overrides fields from FONEMA_* variables in environ. Variables
// that are absent leave the current value untouched.
func (c *Config) ApplyEnv(environ map[string]string) error {
	err := env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnvParse, err)
	}
	return c.Validate()
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// name.yaml and name.yml in the current directory, then in <user config dir>/fonema/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "fonema", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
