// Package detector provides automatic timestamp layout detection for log
// files, driving the detect command and profile generation.
package detector

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"
	"time"

	"logsift/pkg/logline"
)

// DetectionResult holds the result of analyzing a log file.
type DetectionResult struct {
	Matches       []LayoutMatch // Layouts that matched, sorted by confidence descending
	SampledLines  int           // Number of lines sampled
	ParsedLines   int           // Number of lines matching the best layout
	AmbiguityNote string        // Warning about date ordering if applicable
}

// LayoutMatch is a candidate layout with its confidence score.
type LayoutMatch struct {
	Candidate  *LayoutCandidate
	Confidence float64   // 0.0 to 1.0 (share of sampled lines matched)
	MatchCount int       // Number of lines that matched
	SampleLine string    // Example line that matched
	ParsedTime time.Time // Parsed timestamp from the sample
}

// Detector analyzes log files to identify timestamp layouts.
type Detector struct {
	layouts    []*LayoutCandidate
	sampleSize int
}

// Option configures a Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector with the default candidate layouts.
func New(opts ...Option) *Detector {
	d := &Detector{
		layouts:    DefaultLayouts(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile analyzes a log file and returns detected layouts.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of log lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type layoutStats struct {
		candidate  *LayoutCandidate
		matchCount int
		sampleLine string
		parsedTime time.Time
	}
	stats := make(map[string]*layoutStats)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		for _, cand := range d.layouts {
			ts, ok := logline.ParseTimestamp(line, cand.Layout)
			if !ok {
				continue
			}

			s := stats[cand.Name]
			if s == nil {
				s = &layoutStats{
					candidate:  cand,
					sampleLine: line,
					parsedTime: ts,
				}
				stats[cand.Name] = s
			}
			s.matchCount++
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, LayoutMatch{
			Candidate:  s.candidate,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
			ParsedTime: s.parsedTime,
		})
	}

	// Sort by confidence descending; for ties prefer the longer layout
	// (more specific).
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Candidate.Layout) > len(result.Matches[j].Candidate.Layout)
	})

	if len(result.Matches) > 0 {
		result.ParsedLines = result.Matches[0].MatchCount
		if result.Matches[0].Candidate.Ambiguous {
			result.AmbiguityNote = "This layout has date ordering ambiguity (YY/MM/DD vs DD/MM/YY). " +
				"Verify it against your log format before use."
		}
	}

	return result
}

// sampleFile reads up to sampleSize lines from the head of a file.
func (d *Detector) sampleFile(ctx context.Context, path string) ([]string, error) {
	file, err := os.Open(path) // #nosec G304 -- path is provided by user via CLI
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for len(lines) < d.sampleSize && scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
