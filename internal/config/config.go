// Package config loads the dungeongen configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	DefaultServerAddr   = "127.0.0.1:8080"
	DefaultWriteTimeout = "3s"
	DefaultLogLevel     = "info"
)

// Config is the top-level structure of dungeongen.yaml.
type Config struct {
	// Generation holds the dungeon generator inputs.
	Generation world.Config `yaml:"generation"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Telemetry controls OpenTelemetry export.
	Telemetry TelemetryConfig `yaml:"telemetry"`
	// Server configures the websocket server.
	Server ServerConfig `yaml:"server"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stdout.
	Path string `yaml:"path"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// ServerConfig configures the websocket server.
type ServerConfig struct {
	// Addr is the listen address (host:port).
	Addr string `yaml:"addr"`
	// WriteTimeout bounds each websocket write (e.g., "3s").
	WriteTimeout string `yaml:"write_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{Generation: world.DefaultConfig()}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads a YAML file on top of Default, then validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty string settings.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	if cfg.Server.WriteTimeout == "" {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
}

// Validate checks the configuration for errors.
func Validate(cfg *Config) error {
	if err := cfg.Generation.Validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	d, err := time.ParseDuration(cfg.Server.WriteTimeout)
	if err != nil {
		return fmt.Errorf("server.write_timeout: %w", err)
	}
	if d <= 0 {
		return errors.New("server.write_timeout must be positive")
	}
	return nil
}

// WriteTimeoutDuration returns WriteTimeout parsed, falling back to the default.
func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.WriteTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultWriteTimeout)
	}
	return d
}
