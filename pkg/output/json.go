package output

import (
	"context"
	"encoding/json"
	"io"

	"logsift/pkg/stats"
)

// JSONFormatter renders snapshots as indented JSON.
type JSONFormatter struct{}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the snapshot as JSON.
func (f *JSONFormatter) Format(_ context.Context, snap *stats.Snapshot, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}
