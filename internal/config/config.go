// Package config loads client configuration from a TOML file with QKART_*
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields the storefront client needs.
type Config struct {
	Endpoint           string `toml:"endpoint" env:"QKART_ENDPOINT"`
	HTTPTimeoutSeconds int    `toml:"http_timeout_seconds" env:"QKART_HTTP_TIMEOUT_SECONDS"`
	SearchQuietMS      int    `toml:"search_quiet_ms" env:"QKART_SEARCH_QUIET_MS"`
	CartRefreshSeconds int    `toml:"cart_refresh_seconds" env:"QKART_CART_REFRESH_SECONDS"`
	LogPath            string `toml:"log_path" env:"QKART_LOG_PATH"`
	SessionPath        string `toml:"session_path" env:"QKART_SESSION_PATH"`
}

const (
	defaultConfigPath  = "~/.config/qkart/config.toml"
	defaultEndpoint    = "http://localhost:8082/api/v1"
	defaultHTTPTimeout = 5
	defaultSearchQuiet = 500
)

// Load locates and parses the config, falling back to defaults when the file
// is missing. Environment variables override file values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Endpoint:           defaultEndpoint,
		HTTPTimeoutSeconds: defaultHTTPTimeout,
		SearchQuietMS:      defaultSearchQuiet,
	}

	file, err := os.Open(resolved)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	if err == nil {
		defer func() { _ = file.Close() }()
		bytes, readErr := io.ReadAll(file)
		if readErr != nil {
			return Config{}, fmt.Errorf("read config: %w", readErr)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		cfg.HTTPTimeoutSeconds = defaultHTTPTimeout
	}
	if cfg.SearchQuietMS <= 0 {
		cfg.SearchQuietMS = defaultSearchQuiet
	}

	return cfg, nil
}

// HTTPTimeout returns the request timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// SearchQuiet returns the debounce quiet window as a duration.
func (c Config) SearchQuiet() time.Duration {
	return time.Duration(c.SearchQuietMS) * time.Millisecond
}

// CartRefresh returns the periodic cart re-sync interval, or zero when the
// refresh ticker is disabled.
func (c Config) CartRefresh() time.Duration {
	if c.CartRefreshSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CartRefreshSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
