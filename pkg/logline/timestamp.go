package logline

import "time"

// DefaultLayout is the timestamp layout assumed when none is configured,
// e.g. "2025-11-20 17:45:32".
const DefaultLayout = "2006-01-02 15:04:05"

// ParseTimestamp attempts to parse a timestamp from the fixed-width prefix
// of a line using the given Go time layout. The expected width is the
// layout's own length, which matches the rendered width for numeric
// layouts. Returns the parsed time and true on success; a line that is too
// short or whose prefix does not match returns the zero time and false.
// It never returns an error: unparseable input means "no timestamp".
func ParseTimestamp(line, layout string) (time.Time, bool) {
	width := len(layout)
	if width == 0 || len(line) < width {
		return time.Time{}, false
	}
	ts, err := time.Parse(layout, line[:width])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
