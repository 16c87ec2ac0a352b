package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxLineLength, cfg.MaxLineLength)
	assert.True(t, cfg.EchoInput)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "interp.toml", `
max_line_length = 100
echo_input = false
skip_blank_lines = true
summary = true
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.MaxLineLength)
	assert.False(t, cfg.EchoInput)
	assert.True(t, cfg.SkipBlankLines)
	assert.True(t, cfg.Summary)
	assert.False(t, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "interp.yml", "color: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.EchoInput)
	assert.Equal(t, DefaultMaxLineLength, cfg.MaxLineLength)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"Unsupported Extension", "interp.json", "{}"},
		{"Malformed TOML", "interp.toml", "max_line_length = ="},
		{"Malformed YAML", "interp.yaml", "max_line_length: [1"},
		{"Invalid Value", "interp.toml", "max_line_length = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.MaxLineLength = -1
	cfg.LogLevel = "verbose"
	cfg.MetricsFile = filepath.Join(t.TempDir(), "nope", "interp.prom")

	err := cfg.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 3)
	assert.Contains(t, err.Error(), "max_line_length")
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "metrics_file")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := writeFile(t, "interp.yaml", "max_line_length: 64\n")
	t.Setenv(EnvVar, path)
	cfg, err = LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxLineLength)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", Format(9).String())
}
