package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogConfig_Defaults(t *testing.T) {
	clearCatalogEnvVars(t)

	config, err := LoadCatalogConfig()
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Empty(t, config.SeedFile)
	assert.Equal(t, OutputText, config.Output)
	assert.Equal(t, "warn", config.Observability.LogLevel)
	assert.Equal(t, "text", config.Observability.LogFormat)
	assert.False(t, config.Observability.EnableTracing)
	assert.False(t, config.Observability.EnableMetrics)
}

func TestLoadCatalogConfig_CustomValues(t *testing.T) {
	clearCatalogEnvVars(t)

	setEnv(t, "CATALOG_SEED_FILE", "/etc/catalog/seed.yaml")
	setEnv(t, "CATALOG_OUTPUT", "JSON")
	setEnv(t, "CATALOG_LOG_LEVEL", "debug")
	setEnv(t, "CATALOG_LOG_FORMAT", "json")
	setEnv(t, "CATALOG_TRACING_ENABLED", "true")
	setEnv(t, "CATALOG_METRICS_ENABLED", "1")

	config, err := LoadCatalogConfig()
	require.NoError(t, err)

	assert.Equal(t, "/etc/catalog/seed.yaml", config.SeedFile)
	assert.Equal(t, OutputJSON, config.Output)
	assert.Equal(t, "debug", config.Observability.LogLevel)
	assert.Equal(t, "json", config.Observability.LogFormat)
	assert.True(t, config.Observability.EnableTracing)
	assert.True(t, config.Observability.EnableMetrics)
}

func TestLoadCatalogConfig_FallbackOnUnsupportedChoice(t *testing.T) {
	clearCatalogEnvVars(t)

	setEnv(t, "CATALOG_OUTPUT", "yaml")
	setEnv(t, "CATALOG_LOG_FORMAT", "logfmt")
	setEnv(t, "CATALOG_TRACING_ENABLED", "maybe")

	config, err := LoadCatalogConfig()
	require.NoError(t, err)

	assert.Equal(t, OutputText, config.Output)
	assert.Equal(t, "text", config.Observability.LogFormat)
	assert.False(t, config.Observability.EnableTracing)
}

func TestLoadCatalogConfig_InvalidLogLevel(t *testing.T) {
	clearCatalogEnvVars(t)
	setEnv(t, "CATALOG_LOG_LEVEL", "verbose")

	config, err := LoadCatalogConfig()
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "invalid catalog configuration")
}

func TestCatalogConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*CatalogConfig)
		wantErr string
	}{
		{name: "valid", modify: func(*CatalogConfig) {}},
		{name: "bad output", modify: func(c *CatalogConfig) { c.Output = "xml" }, wantErr: "output must be"},
		{name: "empty output", modify: func(c *CatalogConfig) { c.Output = "" }, wantErr: "output must be"},
		{name: "bad level", modify: func(c *CatalogConfig) { c.Observability.LogLevel = "trace" }, wantErr: "log level"},
		{name: "bad format", modify: func(c *CatalogConfig) { c.Observability.LogFormat = "xml" }, wantErr: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validCatalogConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func clearCatalogEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"CATALOG_SEED_FILE",
		"CATALOG_OUTPUT",
		"CATALOG_LOG_LEVEL",
		"CATALOG_LOG_FORMAT",
		"CATALOG_TRACING_ENABLED",
		"CATALOG_METRICS_ENABLED",
	}
	for _, key := range envVars {
		_ = os.Unsetenv(key) // Ignore error in cleanup
	}
}

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	t.Cleanup(func() {
		_ = os.Unsetenv(key) // Ignore error in cleanup
	})
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
}

func validCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		Output: OutputText,
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
	}
}
