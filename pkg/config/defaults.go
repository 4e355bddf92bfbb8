package config

import (
	"os"

	"logsift/pkg/follow"
	"logsift/pkg/logline"
)

// Environment variable names.
const (
	EnvTimeFormat = "LOGSIFT_TIME_FORMAT"
)

// DefaultProfile returns a profile with sensible defaults.
func DefaultProfile() *Profile {
	return &Profile{
		TimeFormat: logline.DefaultLayout,
		Interval:   follow.DefaultInterval,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (p *Profile) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvTimeFormat); layout != "" {
		p.TimeFormat = layout
	}
}
