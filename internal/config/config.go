// Package config holds run configuration for the opcoverage generator.
//
// Values come from three layers, later ones winning: built-in defaults, an
// optional YAML file, and OPCOVERAGE_* environment variables. Command-line
// flags are applied on top by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/opcoverage/internal/classify"
	"github.com/born-ml/opcoverage/internal/emit"
)

// Config holds all generator configuration.
type Config struct {
	// Catalog is the operator catalog file (.yaml, .yml or .json).
	Catalog string `yaml:"catalog"`

	// Output is the generated file path. Empty writes to stdout.
	Output string `yaml:"output"`

	// Format is the output language: cpp, go or yaml.
	Format string `yaml:"format"`

	// Package is the Go package clause for go output.
	Package string `yaml:"package"`

	// BaseClass restricts classification to operators deriving from it.
	BaseClass string `yaml:"base_class"`

	// Traits overrides the trait spellings the classifier tests for.
	Traits classify.TraitNames `yaml:"traits"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:  emit.FormatCPP.String(),
		Package: emit.DefaultPackage,
		Traits:  classify.DefaultTraitNames(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing or empty file yields the
// defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // Config path is provided by the user.
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
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

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("OPCOVERAGE_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("OPCOVERAGE_BASE_CLASS"); v != "" {
		c.BaseClass = v
	}
	if v := os.Getenv("OPCOVERAGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for a generation run.
func (c *Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog path not configured (use --catalog or OPCOVERAGE_CATALOG)")
	}
	if _, err := emit.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return nil
}

// EmitOptions returns the emitter options for this configuration.
func (c *Config) EmitOptions() (emit.Options, error) {
	f, err := emit.ParseFormat(c.Format)
	if err != nil {
		return emit.Options{}, err
	}
	return emit.Options{Format: f, Package: c.Package}, nil
}

// ClassifierConfig returns the classifier configuration for this run.
func (c *Config) ClassifierConfig(logger *zap.Logger) classify.Config {
	return classify.Config{
		Traits:    c.Traits,
		BaseClass: c.BaseClass,
		Logger:    logger,
	}
}

// NewLogger builds a zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}

	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
