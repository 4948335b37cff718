// Package config loads the catalog CLI configuration from the environment.
package config

import (
	"fmt"

	"magazine-catalog/internal/observability/logging"
	envconfig "magazine-catalog/pkg/config"
)

// Supported report output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// CatalogConfig holds configuration for the catalog CLI.
type CatalogConfig struct {
	// SeedFile is the dataset loaded at startup.
	// Default: "" (the embedded dataset)
	SeedFile string `mapstructure:"seed"`

	// Output selects the report format: "text" or "json".
	// Default: "text"
	Output string `mapstructure:"output"`

	// Observability configures logging, tracing and metrics.
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ObservabilityConfig holds logging, tracing and metrics settings.
type ObservabilityConfig struct {
	// LogLevel is one of debug, info, warn or error. Default: "warn"
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is "json" or "text". Default: "text"
	LogFormat string `mapstructure:"log_format"`
	// EnableTracing writes finished spans to stderr. Default: false
	EnableTracing bool `mapstructure:"tracing"`
	// EnableMetrics dumps registry metrics to stderr after each command. Default: false
	EnableMetrics bool `mapstructure:"metrics"`
}

// LoadCatalogConfig loads catalog configuration from environment variables.
// Returns a config with defaults if environment variables are not set.
func LoadCatalogConfig() (*CatalogConfig, error) {
	config := &CatalogConfig{
		SeedFile: envconfig.GetEnvString("CATALOG_SEED_FILE", ""),
		Output:   envconfig.GetEnvChoice("CATALOG_OUTPUT", OutputText, OutputText, OutputJSON),
		Observability: ObservabilityConfig{
			LogLevel:      envconfig.GetEnvString("CATALOG_LOG_LEVEL", "warn"),
			LogFormat:     envconfig.GetEnvChoice("CATALOG_LOG_FORMAT", logging.FormatText, logging.FormatText, logging.FormatJSON),
			EnableTracing: envconfig.GetEnvBool("CATALOG_TRACING_ENABLED", false),
			EnableMetrics: envconfig.GetEnvBool("CATALOG_METRICS_ENABLED", false),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness.
func (c *CatalogConfig) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}

	if _, err := logging.ParseLevel(c.Observability.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.Observability.LogFormat != logging.FormatText && c.Observability.LogFormat != logging.FormatJSON {
		return fmt.Errorf("log format must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.Observability.LogFormat)
	}

	return nil
}
