// Package observability groups the catalog's structured logging, Prometheus
// metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Registry metrics on a custom Prometheus registry
//   - tracing: OpenTelemetry spans and the stdout exporter
package observability
