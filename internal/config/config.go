// Package config provides configuration types and validation for cfpanel.
//
// The panel is configured entirely at startup (flags in cmd/cfpanel);
// the Cloudflare API token itself is never part of the configuration.
// It is entered in the browser and lives only in the session store.
package config

import (
	"errors"
	"strings"
	"time"
)

// CloudflareAPIBase is the default Cloudflare v4 API endpoint.
const CloudflareAPIBase = "https://api.cloudflare.com/client/v4"

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// CloudflareConfig contains provider API client settings.
type CloudflareConfig struct {
	// APIBase is the Cloudflare API base URL. Overridable for tests.
	APIBase string `json:"api_base"`
	// Timeout is the per-request timeout (e.g. "20s").
	Timeout string `json:"timeout"`
}

// SessionConfig controls the in-memory credential store.
type SessionConfig struct {
	// TTL is how long an idle session keeps its token (e.g. "12h").
	TTL string `json:"ttl"`
}

// AuditConfig controls the SQLite audit log.
type AuditConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"`
	Structured       bool              `json:"structured"`
	StructuredFormat string            `json:"structured_format"`
	IncludePID       bool              `json:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Cloudflare CloudflareConfig `json:"cloudflare"`
	Session    SessionConfig    `json:"session"`
	Audit      AuditConfig      `json:"audit"`
	Logging    LoggingConfig    `json:"logging"`
}

// Default returns the configuration used when no overrides are given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Cloudflare: CloudflareConfig{
			APIBase: CloudflareAPIBase,
			Timeout: "20s",
		},
		Session: SessionConfig{
			TTL: "12h",
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    "cfpanel.db",
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}

	if cfg.Cloudflare.APIBase == "" {
		cfg.Cloudflare.APIBase = CloudflareAPIBase
	}
	cfg.Cloudflare.APIBase = strings.TrimSuffix(cfg.Cloudflare.APIBase, "/")
	if _, err := time.ParseDuration(cfg.Cloudflare.Timeout); err != nil {
		cfg.Cloudflare.Timeout = "20s"
	}

	if _, err := time.ParseDuration(cfg.Session.TTL); err != nil {
		cfg.Session.TTL = "12h"
	}

	if cfg.Audit.Enabled && cfg.Audit.Path == "" {
		cfg.Audit.Path = "cfpanel.db"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

// CloudflareTimeout returns the parsed provider request timeout.
func (cfg *Config) CloudflareTimeout() time.Duration {
	d, err := time.ParseDuration(cfg.Cloudflare.Timeout)
	if err != nil {
		return 20 * time.Second
	}
	return d
}

// SessionTTL returns the parsed session lifetime.
func (cfg *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil {
		return 12 * time.Hour
	}
	return d
}
