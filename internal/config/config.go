// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for lumina.
//
// Configuration lives in TOML at ~/.lumina/config.toml, with built-in
// defaults and environment variable overrides (LUMINA_BASE_URL,
// LUMINA_HOME, LUMINA_REFRESH_MINS).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lumina-hub/lumina-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config is the complete lumina configuration.
type Config struct {
	// Backend is the origin serving the completion and roles endpoints.
	Backend BackendConfig `toml:"backend"`

	// Storage configures transcript persistence.
	Storage StorageConfig `toml:"storage"`

	// UI configures the terminal interface.
	UI UIConfig `toml:"ui"`
}

// BackendConfig selects the backend origin and request bounds.
type BackendConfig struct {
	// BaseURL is the backend origin (default: http://localhost:5000).
	BaseURL string `toml:"base_url"`
	// TimeoutSecs bounds each backend request (default: 30).
	TimeoutSecs int `toml:"timeout_secs"`
	// RefreshMins is the custom persona refresh interval (default: 5).
	RefreshMins int `toml:"refresh_mins"`
}

// StorageConfig configures transcript persistence.
type StorageConfig struct {
	// Dir holds persisted transcripts (default: ~/.lumina/state).
	Dir string `toml:"dir"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// Markdown enables markdown rendering of assistant replies (default: true).
	Markdown bool `toml:"markdown"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:     "http://localhost:5000",
			TimeoutSecs: 30,
			RefreshMins: 5,
		},
		Storage: StorageConfig{},
		UI:      UIConfig{Markdown: true},
	}
}

// Dir returns the lumina dotdir, honoring LUMINA_HOME.
func Dir() (string, error) {
	if dir := os.Getenv("LUMINA_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".lumina"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD AND SAVE
// =============================================================================

// Load reads the configuration: defaults, then the TOML file if present,
// then environment overrides, then validation.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as TOML.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// applyEnvOverrides layers environment variables over the loaded file.
func (c *Config) applyEnvOverrides() {
	if base := os.Getenv("LUMINA_BASE_URL"); base != "" {
		c.Backend.BaseURL = base
	}
	if mins := os.Getenv("LUMINA_REFRESH_MINS"); mins != "" {
		if n, err := strconv.Atoi(mins); err == nil && n > 0 {
			c.Backend.RefreshMins = n
		}
	}
}

// fillDefaults backfills zero values after file decode.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = def.Backend.BaseURL
	}
	if c.Backend.TimeoutSecs <= 0 {
		c.Backend.TimeoutSecs = def.Backend.TimeoutSecs
	}
	if c.Backend.RefreshMins <= 0 {
		c.Backend.RefreshMins = def.Backend.RefreshMins
	}
	if c.Storage.Dir == "" {
		if dir, err := Dir(); err == nil {
			c.Storage.Dir = filepath.Join(dir, "state")
		}
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("backend.base_url must be a valid absolute URL")
	}
	if c.Storage.Dir == "" {
		return errors.New("storage.dir must be set")
	}
	return nil
}

// Timeout returns the backend request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// RefreshInterval returns the persona refresh interval as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Backend.RefreshMins) * time.Minute
}
