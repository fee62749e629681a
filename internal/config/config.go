// Package config provides configuration loading for the decoder's ambient
// concerns: logging and the reference-data snapshot location. Supports YAML
// files and environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the ambient configuration for the decoder.
type Config struct {
	Observability ObservabilityConfig `yaml:"observability"`
	Snapshot      SnapshotConfig      `yaml:"snapshot"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // json or console
}

// SnapshotConfig holds reference-data snapshot settings.
type SnapshotConfig struct {
	// ScriptPath overrides the embedded snapshot SQL script with one read
	// from disk. Empty uses the build's embedded snapshot.
	ScriptPath string `yaml:"script_path"`
}

// Load reads configuration from a YAML file and a .env file in the working
// directory (if present), then applies environment variable overrides. An empty path
// yields DefaultConfig with only environment overrides applied.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
		Snapshot: SnapshotConfig{
			ScriptPath: "",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Observability.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Observability.LogFormat)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("VPIC_SNAPSHOT_PATH"); v != "" {
		cfg.Snapshot.ScriptPath = v
	}
}
