package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLog = `2025-11-23 19:04:21 ERROR db timeout on users query
2025-11-23 19:04:22 INFO retry succeeded
2025-11-23 20:15:00 WARN slow response
no timestamp on this line
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}
	return path
}

func TestNewAnalyzeCommand(t *testing.T) {
	cmd := NewAnalyzeCommand()

	if cmd.Use != "analyze [path]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"config", "time-format", "from", "to", "level", "match", "regex", "out"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewStatsCommand(t *testing.T) {
	cmd := NewStatsCommand()

	if cmd.Use != "stats [path]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	if cmd.Flags().Lookup("format") == nil {
		t.Error("Missing flag: format")
	}
}

func TestNewTailCommand(t *testing.T) {
	cmd := NewTailCommand()

	if cmd.Use != "tail <path>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	flags := []string{"interval", "from-start", "color"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	if !strings.Contains(buf.String(), "logsift") {
		t.Errorf("Unexpected version output: %q", buf.String())
	}
}

func TestRunAnalyze_FilterByLevel(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{logPath, "--level", "error"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	got := strings.TrimRight(buf.String(), "\n")
	want := "2025-11-23 19:04:21 ERROR db timeout on users query"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunAnalyze_TimeRange(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{logPath,
		"--from", "2025-11-23 19:00:00",
		"--to", "2025-11-23 19:59:59",
	})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	// The untimestamped line must not pass a time-bounded filter.
	for _, line := range lines {
		if strings.Contains(line, "no timestamp") {
			t.Errorf("untimestamped line passed time filter: %q", line)
		}
	}
}

func TestRunAnalyze_OutFile(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)
	outPath := filepath.Join(t.TempDir(), "filtered.log")

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{logPath, "--match", "retry", "--out", outPath})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Reading output file: %v", err)
	}
	if got := strings.TrimRight(string(data), "\n"); got != "2025-11-23 19:04:22 INFO retry succeeded" {
		t.Errorf("Unexpected output file content: %q", got)
	}
}

func TestRunAnalyze_MissingFile(t *testing.T) {
	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{"/nonexistent/app.log"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRunAnalyze_BadRegex(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{logPath, "--regex", "("})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for invalid regex")
	}
}

func TestRunStats_JSON(t *testing.T) {
	logPath := writeFixture(t, "app.log",
		"2025-11-23 19:04:21 ERROR db timeout\n2025-11-23 19:04:22 INFO retry ok\n")

	cmd := NewStatsCommand()
	cmd.SetArgs([]string{logPath})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	var report struct {
		Total   int            `json:"total_lines"`
		Levels  map[string]int `json:"levels"`
		PerHour map[string]int `json:"per_hour"`
		First   string         `json:"first_timestamp"`
		Last    string         `json:"last_timestamp"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, buf.String())
	}

	if report.Total != 2 {
		t.Errorf("total_lines = %d, want 2", report.Total)
	}
	if report.Levels["ERROR"] != 1 || report.Levels["INFO"] != 1 {
		t.Errorf("Unexpected levels: %v", report.Levels)
	}
	if report.PerHour["2025-11-23 19:00"] != 2 {
		t.Errorf("Unexpected per_hour: %v", report.PerHour)
	}
	if report.First != "2025-11-23 19:04:21" || report.Last != "2025-11-23 19:04:22" {
		t.Errorf("Unexpected span: %s .. %s", report.First, report.Last)
	}
}

func TestRunStats_Markdown(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewStatsCommand()
	cmd.SetArgs([]string{logPath, "--format", "markdown"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Log Statistics", "## Levels", "**ERROR**: 1", "- 2025-11-23 20:00: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestRunStats_UnknownFormat(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewStatsCommand()
	cmd.SetArgs([]string{logPath, "--format", "xml"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestRunStats_WithProfile(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)
	profilePath := writeFixture(t, "profile.yaml", "time_format: \"2006-01-02 15:04:05\"\nlevels: [warn]\n")

	cmd := NewStatsCommand()
	cmd.SetArgs([]string{logPath, "--config", profilePath})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	var report struct {
		Total  int            `json:"total_lines"`
		Levels map[string]int `json:"levels"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if report.Total != 1 || report.Levels["WARN"] != 1 {
		t.Errorf("Profile levels not applied: total=%d levels=%v", report.Total, report.Levels)
	}
}

func TestRunTail_MissingFile(t *testing.T) {
	cmd := NewTailCommand()
	cmd.SetArgs([]string{"/nonexistent/app.log"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing tail target")
	}
}

func TestRunTail_BadInterval(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewTailCommand()
	cmd.SetArgs([]string{logPath, "--interval", "-1s"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for negative interval")
	}
}

func TestRunDetect_Text(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{logPath})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Best match") {
		t.Errorf("Missing best match in output:\n%s", out)
	}
	if !strings.Contains(out, "2006-01-02 15:04:05") {
		t.Errorf("Expected default layout to win:\n%s", out)
	}
}

func TestRunDetect_JSON(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{logPath, "--output", "json", "--all"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	var report struct {
		SampledLines int `json:"sampled_lines"`
		Matches      []struct {
			Layout     string  `json:"layout"`
			Confidence float64 `json:"confidence"`
		} `json:"matches"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, buf.String())
	}
	if report.SampledLines != 4 {
		t.Errorf("sampled_lines = %d, want 4", report.SampledLines)
	}
	if len(report.Matches) == 0 || report.Matches[0].Layout != "2006-01-02 15:04:05" {
		t.Errorf("Unexpected matches: %+v", report.Matches)
	}
}

func TestRunDetect_WriteProfile(t *testing.T) {
	logPath := writeFixture(t, "app.log", sampleLog)
	profilePath := filepath.Join(t.TempDir(), "logsift.yaml")

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{logPath, "--write-profile", profilePath})

	var buf, errBuf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&errBuf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	data, err := os.ReadFile(profilePath)
	if err != nil {
		t.Fatalf("Reading profile: %v", err)
	}
	if !strings.Contains(string(data), `time_format: "2006-01-02 15:04:05"`) {
		t.Errorf("Unexpected profile content: %q", string(data))
	}

	// A second run must refuse to overwrite.
	cmd = NewDetectCommand()
	cmd.SetArgs([]string{logPath, "--write-profile", profilePath})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error when profile already exists")
	}
}

func TestRunValidate_Success(t *testing.T) {
	profilePath := writeFixture(t, "profile.yaml", `time_format: "2006-01-02 15:04:05"
from: "2025-11-23 00:00:00"
to: "2025-11-24 00:00:00"
levels: [error, warn]
match: timeout
interval: 2s
`)

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{profilePath})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "is valid") {
		t.Errorf("Missing success message:\n%s", out)
	}
	if !strings.Contains(out, "error, warn") {
		t.Errorf("Missing levels summary:\n%s", out)
	}
}

func TestRunValidate_InvertedRange(t *testing.T) {
	profilePath := writeFixture(t, "profile.yaml", `time_format: "2006-01-02 15:04:05"
from: "2025-11-24 00:00:00"
to: "2025-11-23 00:00:00"
`)

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{profilePath})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for inverted time range")
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	cmd := NewValidateCommand()
	cmd.SetArgs([]string{"/nonexistent/profile.yaml"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}
