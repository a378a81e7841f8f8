// Package config loads calcpad's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all calcpad configuration.
type Config struct {
	// Home is the directory holding state.json and, by default, config.yaml.
	Home string `yaml:"home"`

	// ErrorMarker is the result text shown after a failed evaluation.
	ErrorMarker string `yaml:"error_marker"`

	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the browser widget server.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty logs to stderr
}

// DefaultHome returns ~/.calcpad, or .calcpad when the home directory is unknown.
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".calcpad"
	}
	return filepath.Join(dir, ".calcpad")
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Home:        DefaultHome(),
		ErrorMarker: "Error",
		Server: ServerConfig{
			Listen: ":8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Path returns the config file location inside home.
func Path(home string) string { return filepath.Join(home, "config.yaml") }

// Load reads configuration from a YAML file on top of the defaults. A
// missing file yields the defaults. Environment overrides apply last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies CALCPAD_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CALCPAD_HOME"); v != "" {
		c.Home = v
	}
	if v := os.Getenv("CALCPAD_LISTEN"); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv("CALCPAD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CALCPAD_ERROR_MARKER"); v != "" {
		c.ErrorMarker = v
	}
}
