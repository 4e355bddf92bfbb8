package output

import (
	"context"
	"fmt"
	"io"
	"sort"

	"logsift/pkg/logline"
	"logsift/pkg/stats"
)

// MarkdownFormatter renders snapshots as a small Markdown document.
type MarkdownFormatter struct{}

// Name returns the format name.
func (f *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format renders the snapshot as Markdown. Levels appear in severity
// order, hour buckets chronologically.
func (f *MarkdownFormatter) Format(_ context.Context, snap *stats.Snapshot, w io.Writer) error {
	fmt.Fprintln(w, "# Log Statistics")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- Total lines: **%d**\n", snap.Total)
	if snap.First != "" {
		fmt.Fprintf(w, "- Time span: %s .. %s\n", snap.First, snap.Last)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Levels")
	for _, lvl := range logline.Levels() {
		if n, ok := snap.Levels[string(lvl)]; ok {
			fmt.Fprintf(w, "- **%s**: %d\n", lvl, n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Per hour")
	hours := make([]string, 0, len(snap.PerHour))
	for h := range snap.PerHour {
		hours = append(hours, h)
	}
	// The bucket key sorts lexicographically into chronological order.
	sort.Strings(hours)
	for _, h := range hours {
		fmt.Fprintf(w, "- %s: %d\n", h, snap.PerHour[h])
	}

	return nil
}
