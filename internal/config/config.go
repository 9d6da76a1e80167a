// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for hubshell.
//
// Supports TOML configuration with sensible defaults and environment
// variable overrides.
//
// Configuration file locations (in order of precedence):
//   - path passed on the command line
//   - ~/.hubshell/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete hubshell configuration.
type Config struct {
	// Server connection settings
	Server ServerConfig `toml:"server"`

	// Display settings for rendered output
	Display DisplayConfig `toml:"display"`

	// Completion settings
	Completion CompletionConfig `toml:"completion"`
}

// ServerConfig describes the hub server to talk to.
type ServerConfig struct {
	// Hostname of the hub server
	Hostname string `toml:"hostname"`
	// Port of the hub server
	Port int `toml:"port"`
	// Protocol is "http" or "https"
	Protocol string `toml:"protocol"`
	// Username to log in as
	Username string `toml:"username"`
}

// DisplayConfig controls how command output is rendered.
type DisplayConfig struct {
	// Padding is the key-column width of key/value output
	Padding int `toml:"padding"`
}

// CompletionConfig controls the completion engine.
type CompletionConfig struct {
	// DisableAPIRelated turns off completions that query the server
	DisableAPIRelated bool `toml:"disable_api_related"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Hostname: "localhost",
			Port:     8080,
			Protocol: "http",
			Username: "",
		},
		Display: DisplayConfig{
			Padding: 16,
		},
		Completion: CompletionConfig{
			DisableAPIRelated: false,
		},
	}
}

// BaseURL returns the server base URL implied by the connection settings.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Server.Protocol, c.Server.Hostname, c.Server.Port)
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the hubshell configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".hubshell"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the path to the line-editor history file.
func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// TokenDBPath returns the path to the token database.
func TokenDBPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tokens.db"), nil
}

// EnsureConfigDir ensures the config directory exists with owner-only
// permissions; the directory holds tokens.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOAD AND SAVE
// =============================================================================

// Load reads the config at path, or the default location when path is empty.
// A missing file yields defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := ConfigPath()
		if err != nil {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		path = defaultPath
		if _, err := os.Stat(path); err != nil {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
	}

	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the TOML file at path into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// Save writes cfg to the default config location.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Protocol != "http" && c.Server.Protocol != "https" {
		return fmt.Errorf("server.protocol must be http or https, got %q", c.Server.Protocol)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Display.Padding < 0 {
		return fmt.Errorf("display.padding must not be negative: %d", c.Display.Padding)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies HUBSHELL_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if hostname := os.Getenv("HUBSHELL_HOSTNAME"); hostname != "" {
		c.Server.Hostname = hostname
	}
	if port := os.Getenv("HUBSHELL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if protocol := os.Getenv("HUBSHELL_PROTOCOL"); protocol != "" {
		c.Server.Protocol = protocol
	}
	if username := os.Getenv("HUBSHELL_USERNAME"); username != "" {
		c.Server.Username = username
	}
	if disable := os.Getenv("HUBSHELL_COMPLETION_API_DISABLE"); disable != "" {
		if d, err := strconv.ParseBool(disable); err == nil {
			c.Completion.DisableAPIRelated = d
		}
	}
}
