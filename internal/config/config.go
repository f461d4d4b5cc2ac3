// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for fundus-chat.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration sources (in order of precedence):
//   - Environment variables (FUNDUS_*)
//   - ~/.fundus-chat/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete fundus-chat configuration.
type Config struct {
	// DefaultModel preselects a chat model; empty shows the model picker.
	DefaultModel string `toml:"default_model"`

	// API backend configuration
	API APIConfig `toml:"api"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Log configuration
	Log LogConfig `toml:"log"`
}

// APIConfig contains FUNDus backend configuration. The assistant and
// data APIs are served by the same backend, so one base URL covers both.
type APIConfig struct {
	// BaseURL is the FUNDus backend base URL
	BaseURL string `toml:"base_url"`
	// SendTimeoutSecs bounds a send-message round trip; assistant
	// replies can take a while, so this is generous.
	SendTimeoutSecs int `toml:"send_timeout_secs"`
	// LookupTimeoutSecs bounds a single entity lookup.
	LookupTimeoutSecs int `toml:"lookup_timeout_secs"`
}

// UIConfig contains UI preference configuration.
type UIConfig struct {
	// Theme is the color theme: "auto", "dark", or "light"
	Theme string `toml:"theme"`
	// ShowTimestamps displays message timestamps in the transcript
	ShowTimestamps bool `toml:"show_timestamps"`
}

// LogConfig contains log file configuration.
type LogConfig struct {
	// Path is the log file path (empty = ~/.fundus-chat/fundus-chat.log)
	Path string `toml:"path"`
	// Debug lowers the log level to debug
	Debug bool `toml:"debug"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "http://127.0.0.1:8000",
			SendTimeoutSecs:   120,
			LookupTimeoutSecs: 30,
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: false,
		},
	}
}

// fillDefaults fills zero values left by a partial config file.
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.API.SendTimeoutSecs == 0 {
		cfg.API.SendTimeoutSecs = def.API.SendTimeoutSecs
	}
	if cfg.API.LookupTimeoutSecs == 0 {
		cfg.API.LookupTimeoutSecs = def.API.LookupTimeoutSecs
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = def.UI.Theme
	}
}

// SendTimeout returns the send-message timeout as a duration.
func (c *Config) SendTimeout() time.Duration {
	return time.Duration(c.API.SendTimeoutSecs) * time.Second
}

// LookupTimeout returns the entity lookup timeout as a duration.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.API.LookupTimeoutSecs) * time.Second
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the application directory (~/.fundus-chat), creating it
// if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".fundus-chat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// PathTOML returns the TOML config file path.
func PathTOML() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load loads configuration from ~/.fundus-chat/config.toml, falling back
// to built-in defaults when the file is absent. Environment overrides
// are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := PathTOML()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Used by the --config flag.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to ~/.fundus-chat/config.toml.
func Save(cfg *Config) error {
	path, err := PathTOML()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not a valid URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme must be http or https, got %q", u.Scheme)
	}

	if c.API.SendTimeoutSecs < 0 || c.API.LookupTimeoutSecs < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be auto, dark, or light, got %q", c.UI.Theme)
	}

	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the configuration.
//
// Supported environment variables:
//   - FUNDUS_API_URL: overrides api.base_url
//   - FUNDUS_MODEL: overrides default_model
//   - FUNDUS_THEME: overrides ui.theme
//   - FUNDUS_DEBUG: set to "1" or "true" to enable debug logging
func (c *Config) ApplyEnvOverrides() {
	if apiURL := os.Getenv("FUNDUS_API_URL"); apiURL != "" {
		c.API.BaseURL = apiURL
	}
	if model := os.Getenv("FUNDUS_MODEL"); model != "" {
		c.DefaultModel = model
	}
	if theme := os.Getenv("FUNDUS_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if debug := os.Getenv("FUNDUS_DEBUG"); debug != "" {
		c.Log.Debug = debug == "1" || strings.ToLower(debug) == "true"
	}
}
