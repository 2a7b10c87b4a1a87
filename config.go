package eaql

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Config represents the eaql configuration
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Color    string         `yaml:"color"`
	Keywords KeywordsConfig `yaml:"keywords"`
	REPL     REPLConfig     `yaml:"repl"`
	Cache    CacheConfig    `yaml:"cache"`
	Output   OutputConfig   `yaml:"output"`
}

// KeywordsConfig controls keyword recognition
type KeywordsConfig struct {
	CaseInsensitive bool `yaml:"case_insensitive"`
}

// REPLConfig represents interactive session settings
type REPLConfig struct {
	Mode   string `yaml:"mode"`
	Prompt string `yaml:"prompt"`
}

// CacheConfig represents the transpile result cache
type CacheConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Size    int   `yaml:"size"`
}

// IsEnabled returns whether the cache is enabled (defaults to true if not specified)
func (c *CacheConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// OutputConfig represents batch output settings
type OutputConfig struct {
	Format string `yaml:"format"`
}

// REPL modes
const (
	ModeTranspile = "transpile"
	ModeValidate  = "validate"
)

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

func validateConfig(config *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warning": true, "warn": true, "error": true}
	if config.LogLevel != "" && !validLevels[config.LogLevel] {
		return fmt.Errorf("%w: invalid log_level '%s': must be one of debug, info, warning, error", ErrConfigValidation, config.LogLevel)
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if config.Color != "" && !validColors[config.Color] {
		return fmt.Errorf("%w: invalid color '%s': must be one of auto, always, never", ErrConfigValidation, config.Color)
	}

	if config.REPL.Mode != "" && config.REPL.Mode != ModeTranspile && config.REPL.Mode != ModeValidate {
		return fmt.Errorf("%w: invalid repl.mode '%s': must be one of transpile, validate", ErrConfigValidation, config.REPL.Mode)
	}

	if config.Cache.Size < 0 {
		return fmt.Errorf("%w: cache.size must be non-negative, got %d", ErrConfigValidation, config.Cache.Size)
	}

	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if config.Output.Format != "" && !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml", ErrConfigValidation, config.Output.Format)
	}

	return nil
}

func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// applyDefaults fills values left empty in the configuration file
func applyDefaults(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = "warning"
	}

	if config.Color == "" {
		config.Color = "auto"
	}

	if config.REPL.Mode == "" {
		config.REPL.Mode = ModeTranspile
	}

	if config.REPL.Prompt == "" {
		config.REPL.Prompt = ">>>"
	}

	if config.Cache.Size == 0 {
		config.Cache.Size = 256
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
}

// loadEnvFiles loads .env files
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in configuration values
func expandConfigEnvVars(config *Config) {
	config.REPL.Prompt = expandEnvVars(config.REPL.Prompt)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
