package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// printer writes text reports line by line and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// list prints a heading with a count followed by one item per line.
func (p *printer) list(heading string, items []string) {
	if len(items) == 0 {
		p.line("%s: none", heading)
		return
	}
	p.line("%s (%d):", heading, len(items))
	for _, item := range items {
		p.line("  - %s", item)
	}
}

// joined prints items comma-separated on one line.
func (p *printer) joined(heading string, items []string) {
	if len(items) == 0 {
		p.line("%s: none", heading)
		return
	}
	p.line("%s: %s", heading, strings.Join(items, ", "))
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
