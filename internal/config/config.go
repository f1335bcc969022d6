// Package config loads polytool settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Prefix is prepended to every environment variable, e.g. POLYTOOL_LOG_LEVEL.
const Prefix = "POLYTOOL"

// Output formats accepted by OutputConfig.Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all polytool configuration.
// The groups are embedded so that envconfig keys stay flat (POLYTOOL_WORKERS,
// not POLYTOOL_COMPUTE_WORKERS).
type Config struct {
	LogConfig
	ComputeConfig
	OutputConfig
	PlotConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// ComputeConfig controls kernel parallelism.
type ComputeConfig struct {
	Workers int `envconfig:"WORKERS" default:"1"`
}

// OutputConfig selects the result encoding written to stdout.
type OutputConfig struct {
	Format string `envconfig:"OUTPUT_FORMAT" default:"json"`
}

// PlotConfig sets the rendered plot size in centimetres.
type PlotConfig struct {
	WidthCM  float64 `envconfig:"PLOT_WIDTH_CM" default:"12"`
	HeightCM float64 `envconfig:"PLOT_HEIGHT_CM" default:"8"`
}

// Load reads configuration from POLYTOOL_* environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the command layer cannot act on.
func (c *Config) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: WORKERS must be >= 1, got %d", c.Workers)
	}
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: OUTPUT_FORMAT must be %q or %q, got %q", FormatJSON, FormatYAML, c.Format)
	}
	if c.WidthCM <= 0 || c.HeightCM <= 0 {
		return fmt.Errorf("config: plot size must be positive, got %gx%g cm", c.WidthCM, c.HeightCM)
	}

	return nil
}
