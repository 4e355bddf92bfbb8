// Package output renders statistics snapshots and filtered lines. The
// core pipeline never formats anything itself; it hands records and
// snapshots to this boundary.
package output

import (
	"context"
	"io"

	"logsift/pkg/logline"
	"logsift/pkg/stats"
)

// Formatter renders a statistics snapshot in a specific format.
type Formatter interface {
	// Format renders the snapshot to the given writer.
	Format(ctx context.Context, snap *stats.Snapshot, w io.Writer) error

	// Name returns the format name (json, markdown).
	Name() string
}

// NewFormatter returns the Formatter for a format name.
func NewFormatter(name string) (Formatter, bool) {
	switch name {
	case "json":
		return &JSONFormatter{}, true
	case "markdown", "md":
		return &MarkdownFormatter{}, true
	default:
		return nil, false
	}
}

// Renderer writes individual filtered records to an output stream.
type Renderer interface {
	Render(rec logline.Record) error
}
