// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/cgpa-calculator/internal/rendering"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port             int   `json:"port,omitempty"`               // HTTP listen port
	RateLimitEnabled *bool `json:"rate_limit_enabled,omitempty"` // Nil means "use RATE_LIMIT_ENABLED / default"

	// Output
	ReportFormat string `json:"report_format,omitempty"` // text, latex or json
	Template     string `json:"template,omitempty"`      // Custom report template path
	LogFormat    string `json:"log_format,omitempty"`    // logfmt or json
	Verbose      bool   `json:"verbose,omitempty"`       // Print result boxes to stdout

	// Batch
	BatchWorkers int `json:"batch_workers,omitempty"` // Concurrent transcript evaluations
}

// Defaults returns the built-in configuration, with PORT and CGPA_LOG_FORMAT
// from the environment taking precedence.
func Defaults() Config {
	cfg := Config{
		Port:         8080,
		ReportFormat: rendering.FormatText,
		LogFormat:    "logfmt",
		BatchWorkers: 4,
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("CGPA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.BatchWorkers < 0 {
		return fmt.Errorf("config error: 'batch_workers' must be non-negative")
	}

	switch c.ReportFormat {
	case "", rendering.FormatText, rendering.FormatLaTeX, rendering.FormatJSON:
	default:
		return fmt.Errorf("config error: 'report_format' must be one of text, latex, json (got %q)", c.ReportFormat)
	}

	switch c.LogFormat {
	case "", "logfmt", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be logfmt or json (got %q)", c.LogFormat)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ReportFormat == "" {
		result.ReportFormat = defaults.ReportFormat
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.BatchWorkers == 0 {
		result.BatchWorkers = defaults.BatchWorkers
	}
	if result.RateLimitEnabled == nil {
		result.RateLimitEnabled = defaults.RateLimitEnabled
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
