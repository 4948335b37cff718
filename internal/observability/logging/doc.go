// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for the logging patterns used throughout the catalog.
//
// Key features:
//   - JSON and text output formats
//   - Level parsing from configuration strings
//   - Context-aware logging
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    level, _ := logging.ParseLevel("debug")
//	    logger := logging.NewLogger(logging.Options{Level: level, Format: logging.FormatText})
//	    logger.Info("catalog seeded", slog.Int("articles", 8))
//	}
package logging
