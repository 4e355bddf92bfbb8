// Package filter provides the record-level predicate applied to parsed
// log lines. A Spec describes the user-configured conditions; Compile
// validates them once, and the resulting Filter is immutable and safe to
// share across evaluations and poll cycles.
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"logsift/pkg/logline"
)

// Spec is the full set of user-configured accept/reject conditions.
// Zero-value fields mean "condition not configured". All configured
// conditions are ANDed.
type Spec struct {
	// From is the inclusive lower timestamp bound. Zero means unbounded.
	From time.Time

	// To is the inclusive upper timestamp bound. Zero means unbounded.
	To time.Time

	// Levels is the set of accepted severity tokens (normalized during
	// Compile). Empty accepts all levels, including absent ones.
	Levels []string

	// Match is a case-sensitive literal substring.
	Match string

	// Regex is an unanchored regular expression, matched anywhere in the
	// raw line.
	Regex string
}

// Filter is a compiled, read-only Spec.
type Filter struct {
	from, to time.Time
	levels   map[logline.Level]struct{}
	match    string
	re       *regexp.Regexp
}

// Compile validates the Spec and returns a Filter. Validation failures
// (malformed regex, unknown level, inverted bounds) are fatal at
// configuration time, before any input is read.
func (s Spec) Compile() (*Filter, error) {
	f := &Filter{
		from:  s.From,
		to:    s.To,
		match: s.Match,
	}

	if !s.From.IsZero() && !s.To.IsZero() && s.From.After(s.To) {
		return nil, fmt.Errorf("from bound %s is after to bound %s",
			s.From.Format(logline.DefaultLayout), s.To.Format(logline.DefaultLayout))
	}

	if len(s.Levels) > 0 {
		f.levels = make(map[logline.Level]struct{}, len(s.Levels))
		for _, l := range s.Levels {
			norm := logline.NormalizeLevel(l)
			if norm == "" {
				return nil, fmt.Errorf("unknown level %q (valid: DEBUG, INFO, WARN, ERROR, CRITICAL)", l)
			}
			f.levels[norm] = struct{}{}
		}
	}

	if s.Regex != "" {
		re, err := regexp.Compile(s.Regex)
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
		f.re = re
	}

	return f, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// static specs.
func MustCompile(s Spec) *Filter {
	f, err := s.Compile()
	if err != nil {
		panic(err)
	}
	return f
}

// Keep reports whether a record passes every configured condition.
// Conditions are evaluated cheapest first and short-circuit on the first
// failure: level set, lower bound, upper bound, substring, regex.
// Both timestamp bounds are inclusive. A record with no timestamp fails a
// bound check only if that bound is configured; likewise for levels.
func (f *Filter) Keep(rec logline.Record) bool {
	if f.levels != nil {
		if !rec.HasLevel() {
			return false
		}
		if _, ok := f.levels[rec.Level]; !ok {
			return false
		}
	}

	if !f.from.IsZero() {
		if !rec.HasTimestamp() || rec.Timestamp.Before(f.from) {
			return false
		}
	}

	if !f.to.IsZero() {
		if !rec.HasTimestamp() || rec.Timestamp.After(f.to) {
			return false
		}
	}

	if f.match != "" && !strings.Contains(rec.Raw, f.match) {
		return false
	}

	if f.re != nil && !f.re.MatchString(rec.Raw) {
		return false
	}

	return true
}

// ParseBound parses a timestamp bound given in the same layout the log
// lines use. Empty input means "no bound".
func ParseBound(value, layout string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing bound %q with layout %q: %w", value, layout, err)
	}
	if ts.IsZero() {
		return time.Time{}, errors.New("bound resolves to the zero time")
	}
	return ts, nil
}
