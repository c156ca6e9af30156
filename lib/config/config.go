// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Raildesk
// client.
//
// Configuration is loaded from a single yaml file specified by:
//   - the RAILDESK_CONFIG environment variable, or
//   - the --config flag passed to a command.
//
// When neither is set, built-in defaults apply — unlike a server
// deployment, a booking client must work out of the box against a
// local backend. The file may contain environment-specific sections
// (development, staging, production) that override base values when
// the environment matches.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment identifies which backend deployment the client targets.
type Environment string

const (
	// Development is a local backend.
	Development Environment = "development"
	// Staging is the pre-production deployment.
	Staging Environment = "staging"
	// Production is the live booking platform.
	Production Environment = "production"
)

// Config is the client configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	// API configures how the client reaches the booking backend.
	API APIConfig `yaml:"api"`

	// UI configures the full-screen console.
	UI UIConfig `yaml:"ui"`

	// Per-environment overrides, applied after the base values.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains the fields that can vary per environment.
type Overrides struct {
	API *APIConfig `yaml:"api,omitempty"`
	UI  *UIConfig  `yaml:"ui,omitempty"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the backend base path, including the API prefix
	// (e.g. "http://localhost:8080/api/v1").
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each request (e.g. "30s").
	Timeout string `yaml:"timeout"`
}

// UIConfig configures the console.
type UIConfig struct {
	// SeatsPerRow is the seat grid row width. The grid chunks the
	// flat seat list into rows of this size.
	SeatsPerRow int `yaml:"seats_per_row"`
}

// Default returns the built-in configuration: a local development
// backend and an 8-seat grid row, matching a standard coach layout.
func Default() *Config {
	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL: "http://localhost:8080/api/v1",
			Timeout: "30s",
		},
		UI: UIConfig{
			SeatsPerRow: 8,
		},
	}
}

// Load loads configuration from RAILDESK_CONFIG if set, otherwise
// returns the defaults.
func Load() (*Config, error) {
	configPath := os.Getenv("RAILDESK_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging it
// over the defaults and then applying the matching environment
// override section.
func LoadFile(path string) (*Config, error) {
	configuration := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, configuration); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	configuration.applyEnvironmentOverrides()

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return configuration, nil
}

// applyEnvironmentOverrides merges the override section matching the
// configured environment.
func (configuration *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch configuration.Environment {
	case Development:
		overrides = configuration.Development
	case Staging:
		overrides = configuration.Staging
	case Production:
		overrides = configuration.Production
	}
	if overrides == nil {
		return
	}
	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			configuration.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.Timeout != "" {
			configuration.API.Timeout = overrides.API.Timeout
		}
	}
	if overrides.UI != nil {
		if overrides.UI.SeatsPerRow > 0 {
			configuration.UI.SeatsPerRow = overrides.UI.SeatsPerRow
		}
	}
}

// Validate checks the configuration for values that would break every
// request rather than failing lazily at call time.
func (configuration *Config) Validate() error {
	if configuration.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if _, err := configuration.RequestTimeout(); err != nil {
		return err
	}
	if configuration.UI.SeatsPerRow <= 0 {
		return fmt.Errorf("ui.seats_per_row must be positive, got %d", configuration.UI.SeatsPerRow)
	}
	return nil
}

// RequestTimeout parses the configured request timeout.
func (configuration *Config) RequestTimeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(configuration.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout %q: %w", configuration.API.Timeout, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("api.timeout must be positive, got %s", timeout)
	}
	return timeout, nil
}
