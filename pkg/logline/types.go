// Package logline provides parsing of raw log lines into structured records.
package logline

import "time"

// Record represents a single log line with extracted metadata.
// A Record is immutable once constructed: Raw always holds the original
// line text unchanged.
type Record struct {
	// Raw is the original line content, never mutated.
	Raw string

	// Source is the file path (or "<stdin>") this line came from.
	Source string

	// Timestamp is the parsed timestamp from the line prefix.
	// The zero value means no timestamp was recognized.
	Timestamp time.Time

	// Level is the normalized severity detected in the line.
	// Empty means no recognizable level token was found.
	Level Level
}

// HasTimestamp reports whether a timestamp was parsed from the line.
func (r Record) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// HasLevel reports whether a severity level was detected in the line.
func (r Record) HasLevel() bool {
	return r.Level != ""
}

// Parser builds Records from raw lines using a fixed timestamp layout.
type Parser struct {
	layout string
}

// NewParser creates a Parser for the given Go time layout.
// Lines whose prefix does not match the layout produce records with an
// absent timestamp; parsing never fails.
func NewParser(layout string) *Parser {
	return &Parser{layout: layout}
}

// Layout returns the timestamp layout this parser uses.
func (p *Parser) Layout() string {
	return p.layout
}

// Parse builds a Record from a raw line. Malformed timestamps and
// unrecognized levels are absorbed into absent fields.
func (p *Parser) Parse(raw, source string) Record {
	rec := Record{Raw: raw, Source: source}
	if ts, ok := ParseTimestamp(raw, p.layout); ok {
		rec.Timestamp = ts
	}
	rec.Level = DetectLevel(raw)
	return rec
}
