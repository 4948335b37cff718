// Package config provides environment variable helpers shared by the
// configuration loaders. Invalid values fall back to the default and are
// reported with a slog warning instead of an error.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Surrounding whitespace is trimmed; a value that is blank after trimming counts as unset.
//
// Example:
//
//	seedFile := GetEnvString("CATALOG_SEED_FILE", "")
func GetEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of an environment variable as a boolean.
//
// Accepted true values: "1", "t", "T", "true", "TRUE", "True"
// Accepted false values: "0", "f", "F", "false", "FALSE", "False"
//
// If the environment variable is not set, empty, or has an invalid value,
// this function returns the default value and logs a warning.
//
// Example:
//
//	enabled := GetEnvBool("CATALOG_TRACING_ENABLED", false)
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return true
	case "0", "f", "F", "false", "FALSE", "False":
		return false
	default:
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
}

// GetEnvChoice returns the lower-cased value of an environment variable when
// it is one of allowed.
//
// If the environment variable is not set or holds a value outside allowed,
// this function returns the default value; the latter case logs a warning.
//
// Example:
//
//	format := GetEnvChoice("CATALOG_LOG_FORMAT", "json", "json", "text")
func GetEnvChoice(key, defaultValue string, allowed ...string) string {
	valueStr := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if valueStr == "" {
		return defaultValue
	}

	for _, a := range allowed {
		if valueStr == a {
			return valueStr
		}
	}

	slog.Warn("unsupported value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", valueStr),
		slog.String("default", defaultValue),
		slog.Any("allowed", allowed))
	return defaultValue
}
