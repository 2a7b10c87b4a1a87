package eaql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "eaql.yaml")
	err := os.WriteFile(configPath, []byte(content), 0644)
	assert.NoError(t, err)
	return configPath
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	// Test loading config with non-existent file (should return defaults)
	config, err := LoadConfig("non-existent-file.yaml")
	assert.NoError(t, err)
	assert.True(t, config != nil)

	assert.Equal(t, "warning", config.LogLevel)
	assert.Equal(t, "auto", config.Color)
	assert.False(t, config.Keywords.CaseInsensitive)
	assert.Equal(t, ModeTranspile, config.REPL.Mode)
	assert.Equal(t, ">>>", config.REPL.Prompt)
	assert.True(t, config.Cache.IsEnabled())
	assert.Equal(t, 256, config.Cache.Size)
	assert.Equal(t, "text", config.Output.Format)
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
log_level: debug
color: never
keywords:
  case_insensitive: true
repl:
  mode: validate
  prompt: "eaql>"
cache:
  enabled: false
output:
  format: yaml
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "never", config.Color)
	assert.True(t, config.Keywords.CaseInsensitive)
	assert.Equal(t, ModeValidate, config.REPL.Mode)
	assert.Equal(t, "eaql>", config.REPL.Prompt)
	assert.False(t, config.Cache.IsEnabled())
	assert.Equal(t, 256, config.Cache.Size)
	assert.Equal(t, "yaml", config.Output.Format)
}

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	configPath := writeConfig(t, `
log_level: info
unknown_key: "should cause error"
repl:
  mode: transpile
  history: true
`)

	_, err := LoadConfig(configPath)
	assert.Error(t, err, "expected error for unknown keys in strict mode")
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_EnvironmentExpansion(t *testing.T) {
	t.Setenv("EAQL_PROMPT", "sales")
	configPath := writeConfig(t, `
log_level: error
repl:
  prompt: "${EAQL_PROMPT} >>>"
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
	assert.Equal(t, "sales >>>", config.REPL.Prompt)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"invalid log level", Config{LogLevel: "verbose"}},
		{"invalid color", Config{Color: "sometimes"}},
		{"invalid repl mode", Config{REPL: REPLConfig{Mode: "execute"}}},
		{"negative cache size", Config{Cache: CacheConfig{Size: -1}}},
		{"invalid output format", Config{Output: OutputConfig{Format: "csv"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			assert.IsError(t, err, ErrConfigValidation)
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateConfig(getDefaultConfig()))
	})
}

func TestLoadConfig_ValidationError(t *testing.T) {
	configPath := writeConfig(t, "repl:\n  mode: execute\n")

	_, err := LoadConfig(configPath)
	assert.IsError(t, err, ErrConfigValidation)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EAQL_TEST_VAR", "value")

	assert.Equal(t, "value", expandEnvVars("$EAQL_TEST_VAR"))
	assert.Equal(t, "pre-value-post", expandEnvVars("pre-${EAQL_TEST_VAR}-post"))
	assert.Equal(t, "", expandEnvVars("$EAQL_UNSET_VAR_FOR_TEST"))
	assert.Equal(t, "plain", expandEnvVars("plain"))
}
