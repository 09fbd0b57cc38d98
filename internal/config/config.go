// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to applicant intake JSON file
	Output string `json:"output,omitempty"` // Output directory for the surface and document

	// Service
	ServiceURL            string `json:"service_url,omitempty"`             // Analysis service base URL
	AnalyzeTimeoutMinutes int    `json:"analyze_timeout_minutes,omitempty"` // Timeout for the analyze call

	// Behavior
	Export  bool `json:"export,omitempty"`  // Export the rendered surface as a PDF
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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
// Required fields are checked after merging with CLI flags, not here.
func (c *Config) Validate() error {
	if c.ServiceURL != "" {
		parsed, err := url.Parse(c.ServiceURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'service_url' is not a valid URL: %s", c.ServiceURL)
		}
	}

	if c.AnalyzeTimeoutMinutes < 0 {
		return fmt.Errorf("config error: 'analyze_timeout_minutes' must be non-negative")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.ServiceURL == "" {
		result.ServiceURL = defaults.ServiceURL
	}
	if result.AnalyzeTimeoutMinutes == 0 {
		result.AnalyzeTimeoutMinutes = defaults.AnalyzeTimeoutMinutes
	}
	if !result.Export {
		result.Export = defaults.Export
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
