// Package main is the entry point for the catalog CLI.
// Usage: catalog [--seed FILE] [--output json] <overview|author NAME|magazine NAME|top-publisher|validate>
package main

import (
	"context"
	"fmt"
	"os"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
