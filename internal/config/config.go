// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// DefaultAPIBase is the profile service base URL used when none is configured.
const DefaultAPIBase = "http://127.0.0.1:8000"

// EnvAPIBase is the environment variable that overrides the API base URL.
const EnvAPIBase = "CAREER_API_BASE"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// APIBase is the base URL of the profile-submission service.
	APIBase string `json:"api_base,omitempty"`

	// Questions is a path to an alternate question source document.
	// Empty means the embedded default document.
	Questions string `json:"questions,omitempty"`

	// Prefill
	Name  string `json:"name,omitempty"`  // Candidate name
	Email string `json:"email,omitempty"` // Candidate email

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // HTTP timeout for service calls
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv returns a Config populated from environment variables.
// Only variables that are set produce values.
func FromEnv() Config {
	return Config{
		APIBase: os.Getenv(EnvAPIBase),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBase != "" {
		parsed, err := url.Parse(c.APIBase)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'api_base' is not a valid URL: %s", c.APIBase)
		}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	if c.Questions != "" {
		if _, err := os.Stat(c.Questions); os.IsNotExist(err) {
			return fmt.Errorf("config error: question document not found: %s", c.Questions)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under CLI flags and to apply
// the documented API base default.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBase == "" {
		result.APIBase = defaults.APIBase
	}
	if result.APIBase == "" {
		result.APIBase = DefaultAPIBase
	}
	if result.Questions == "" {
		result.Questions = defaults.Questions
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
