package logline

import "testing"

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"WARN", LevelWarn},
		{"WARNING", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"CRITICAL", LevelCritical},
		{"FATAL", LevelCritical},
		{"fatal", LevelCritical},
		{"  info  ", LevelInfo},
		{"TRACE", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeLevel(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLevel_Idempotent(t *testing.T) {
	inputs := []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "CRITICAL", "FATAL"}

	for _, in := range inputs {
		once := NormalizeLevel(in)
		twice := NormalizeLevel(string(once))
		if once != twice {
			t.Errorf("NormalizeLevel not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestDetectLevel(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Level
	}{
		{"bracketed error", "2025-11-23 19:00:00 [ERROR] db timeout", LevelError},
		{"bare info", "2025-11-23 19:30:00 INFO ok", LevelInfo},
		{"lowercase warn", "something went warn-worthy", LevelWarn},
		{"warning normalizes", "[WARNING] disk almost full", LevelWarn},
		{"fatal normalizes", "FATAL: cannot bind port", LevelCritical},
		{"critical", "[critical] meltdown", LevelCritical},
		{"debug wins over error in scan order", "DEBUG retrying after ERROR", LevelDebug},
		{"no token", "plain message without severity", ""},
		{"empty line", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLevel(tt.line)
			if got != tt.want {
				t.Errorf("DetectLevel(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
