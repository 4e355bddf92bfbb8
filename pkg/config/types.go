// Package config provides loading and validation of logsift filter
// profiles: YAML files that supply defaults for the shared filter flags.
package config

import (
	"time"

	"logsift/pkg/filter"
)

// Profile is the root structure loaded from YAML. Every field is
// optional; command-line flags override profile values.
type Profile struct {
	// TimeFormat is the Go time layout used for line prefixes and for
	// the From/To bounds below.
	TimeFormat string `yaml:"time_format"`

	// From and To are inclusive timestamp bounds, written in TimeFormat.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	// Levels lists accepted severities (case-insensitive).
	Levels []string `yaml:"levels,omitempty"`

	// Match is a case-sensitive literal substring.
	Match string `yaml:"match,omitempty"`

	// Regex is an unanchored regular expression.
	Regex string `yaml:"regex,omitempty"`

	// Interval is the tail poll interval.
	Interval time.Duration `yaml:"interval,omitempty"`

	// FromStart makes tail read the file from the beginning.
	FromStart bool `yaml:"from_start,omitempty"`

	// Parsed bounds (populated during validation).
	fromTS time.Time
	toTS   time.Time
}

// FromTime returns the parsed lower bound; zero when unset.
func (p *Profile) FromTime() time.Time {
	return p.fromTS
}

// ToTime returns the parsed upper bound; zero when unset.
func (p *Profile) ToTime() time.Time {
	return p.toTS
}

// FilterSpec returns the filter specification the profile describes.
// Callers typically overlay command-line flags on it before compiling.
func (p *Profile) FilterSpec() filter.Spec {
	return filter.Spec{
		From:   p.fromTS,
		To:     p.toTS,
		Levels: p.Levels,
		Match:  p.Match,
		Regex:  p.Regex,
	}
}
