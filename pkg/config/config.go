package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no --config is given.
const EnvVar = "INTERP_CONFIG"

const (
	DefaultMaxLineLength = 1024
	maxLineLengthLimit   = 1 << 20
)

// Format represents the configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config controls how statements are read, evaluated and reported.
type Config struct {
	// MaxLineLength bounds a statement line in bytes, newline excluded.
	MaxLineLength int `toml:"max_line_length" yaml:"max_line_length"`
	// EchoInput writes each statement before its report.
	EchoInput      bool   `toml:"echo_input" yaml:"echo_input"`
	SkipBlankLines bool   `toml:"skip_blank_lines" yaml:"skip_blank_lines"`
	Color          bool   `toml:"color" yaml:"color"`
	Summary        bool   `toml:"summary" yaml:"summary"`
	MetricsFile    string `toml:"metrics_file" yaml:"metrics_file"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxLineLength: DefaultMaxLineLength,
		EchoInput:     true,
		LogLevel:      "info",
	}
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	path = os.ExpandEnv(path)
	format, err := detectFormat(path)
	if err != nil {
		return cfg, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing TOML config %s", path)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing YAML config %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by INTERP_CONFIG, or returns the defaults
// when the variable is unset.
func LoadFromEnv() (Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, errors.Errorf("unsupported config extension %q, want .toml, .yaml or .yml", filepath.Ext(path))
	}
}

var logLevels = []string{"debug", "info", "warning", "error"}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.MaxLineLength <= 0 || c.MaxLineLength > maxLineLengthLimit {
		errs = multierror.Append(errs, fmt.Errorf("max_line_length must be in [1, %d], got %d", maxLineLengthLimit, c.MaxLineLength))
	}
	if !isLogLevel(c.LogLevel) {
		errs = multierror.Append(errs, fmt.Errorf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel))
	}
	if c.MetricsFile != "" {
		if dir := filepath.Dir(c.MetricsFile); dir != "." {
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				errs = multierror.Append(errs, fmt.Errorf("metrics_file directory %q does not exist", dir))
			}
		}
	}
	return errs.ErrorOrNil()
}

func isLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}
