// Package tracing provides OpenTelemetry tracing integration.
//
// Catalog use cases open one span per operation through StartSpan. Without a
// configured provider the spans are no-ops; InitStdout installs an SDK
// provider that prints finished spans, which the CLI enables with --trace.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/tracing"
//
//	func main() {
//	    shutdown, err := tracing.InitStdout(os.Stderr)
//	    if err != nil { ... }
//	    defer shutdown(context.Background())
//	}
//
//	func buildReport(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "catalog.report")
//	    defer span.End()
//	    // ... build report ...
//	}
package tracing
