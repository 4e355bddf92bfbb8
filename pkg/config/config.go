package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"logsift/pkg/filter"
)

// Load reads and validates a profile file.
func Load(_ context.Context, path string) (*Profile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	p := DefaultProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}

	p.applyEnvironmentOverrides()

	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	return p, nil
}

// Validate checks a profile for errors and parses its timestamp bounds.
// All configuration problems surface here, before any input is read.
func Validate(p *Profile) error {
	if p.TimeFormat == "" {
		return errors.New("time_format is required")
	}

	var err error
	if p.fromTS, err = filter.ParseBound(p.From, p.TimeFormat); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if p.toTS, err = filter.ParseBound(p.To, p.TimeFormat); err != nil {
		return fmt.Errorf("to: %w", err)
	}

	// Compiling the spec validates levels, bound ordering, and the regex.
	if _, err := p.FilterSpec().Compile(); err != nil {
		return err
	}

	if p.Interval < 0 {
		return fmt.Errorf("interval must be positive, got %v", p.Interval)
	}
	if p.Interval == 0 {
		p.Interval = DefaultProfile().Interval
	}

	return nil
}
