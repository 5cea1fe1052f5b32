// Package config loads darkpyonix-lite configuration from an optional YAML
// file with environment-variable overrides. Environment wins over the file,
// the file over built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/choiseungje/darkpyonix-lite/internal/identity"
	"github.com/choiseungje/darkpyonix-lite/internal/kernels"
)

// Config holds all darkpyonix-lite configuration.
type Config struct {
	// Namespace is a UUID-formatted override of the identity namespace.
	// Empty or malformed values fall back to the default namespace.
	Namespace string `yaml:"namespace" env:"DARKPYONIX_NAMESPACE"`

	// RootDir is the server root that relative notebook paths resolve
	// against. Empty means the process working directory.
	RootDir string `yaml:"root_dir" env:"DARKPYONIX_ROOT_DIR"`

	// KernelName is assigned to start requests that name no kernel type.
	KernelName string `yaml:"kernel_name" env:"DARKPYONIX_KERNEL_NAME"`

	// Logging configures the CLI logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger built for the CLI.
type LoggingConfig struct {
	Level       string `yaml:"level" env:"DARKPYONIX_LOG_LEVEL"`
	Development bool   `yaml:"development" env:"DARKPYONIX_LOG_DEV"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		KernelName: kernels.DefaultKernelName,
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path when path is non-empty, then applies
// environment overrides. A missing file at an explicit path is an error;
// an empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("apply env overrides: %w", err)
	}
	return cfg, nil
}

// NamespaceUUID returns the configured identity namespace. Empty or
// malformed values fall back to identity.DefaultNamespace silently.
func (c Config) NamespaceUUID() uuid.UUID {
	return identity.ParseNamespace(c.Namespace)
}
