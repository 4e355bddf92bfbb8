package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"logsift/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output       string
	SampleSize   int
	ShowAll      bool
	WriteProfile string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <path>",
		Short: "Detect the timestamp layout used by a log file",
		Long: `Sample lines from the head of a log file and score the built-in
timestamp layout candidates against them. The best match can be written
out as a starter profile for the other commands.

Examples:
  logsift detect app.log
  logsift detect app.log --all --output json
  logsift detect app.log --write-profile logsift.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample from the head of the file")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all matching layouts, not just the best")
	cmd.Flags().StringVarP(&opts.WriteProfile, "write-profile", "w", "", "Write a starter profile for the best layout to this path")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Output != "text" && opts.Output != "json" {
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	det := detector.New(detector.WithSampleSize(opts.SampleSize))
	result, err := det.DetectFromFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("detecting layout: %w", err)
	}

	out := cmd.OutOrStdout()
	switch opts.Output {
	case "json":
		if err := writeDetectJSON(out, args[0], result, opts.ShowAll); err != nil {
			return err
		}
	default:
		writeDetectText(out, args[0], result, opts.ShowAll)
	}

	if opts.WriteProfile != "" {
		if len(result.Matches) == 0 {
			return fmt.Errorf("no layout detected, refusing to write profile %s", opts.WriteProfile)
		}
		if err := writeStarterProfile(opts.WriteProfile, result.Matches[0].Candidate.Layout); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote profile to %s\n", opts.WriteProfile)
	}
	return nil
}

func writeDetectText(w io.Writer, path string, result *detector.DetectionResult, all bool) {
	fmt.Fprintf(w, "File: %s\n", path)
	fmt.Fprintf(w, "Sampled lines: %d\n", result.SampledLines)

	if len(result.Matches) == 0 {
		fmt.Fprintln(w, "No known timestamp layout matched.")
		return
	}

	matches := result.Matches
	if !all {
		matches = matches[:1]
	}
	for i, m := range matches {
		label := "Best match"
		if i > 0 {
			label = "Also matched"
		}
		fmt.Fprintf(w, "\n%s: %s\n", label, m.Candidate.Name)
		fmt.Fprintf(w, "  Layout:     %s\n", m.Candidate.Layout)
		fmt.Fprintf(w, "  Confidence: %.0f%% (%d of %d lines)\n", m.Confidence*100, m.MatchCount, result.SampledLines)
		fmt.Fprintf(w, "  Example:    %s\n", m.SampleLine)
	}

	if result.AmbiguityNote != "" {
		fmt.Fprintf(w, "\nWarning: %s\n", result.AmbiguityNote)
	}
}

type detectReport struct {
	File          string              `json:"file"`
	SampledLines  int                 `json:"sampled_lines"`
	Matches       []detectReportMatch `json:"matches"`
	AmbiguityNote string              `json:"ambiguity_note,omitempty"`
}

type detectReportMatch struct {
	Name       string  `json:"name"`
	Layout     string  `json:"layout"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line"`
}

func writeDetectJSON(w io.Writer, path string, result *detector.DetectionResult, all bool) error {
	report := detectReport{
		File:          path,
		SampledLines:  result.SampledLines,
		Matches:       []detectReportMatch{},
		AmbiguityNote: result.AmbiguityNote,
	}

	matches := result.Matches
	if !all && len(matches) > 1 {
		matches = matches[:1]
	}
	for _, m := range matches {
		report.Matches = append(report.Matches, detectReportMatch{
			Name:       m.Candidate.Name,
			Layout:     m.Candidate.Layout,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// writeStarterProfile writes a minimal profile with the detected layout.
// It refuses to overwrite an existing file.
func writeStarterProfile(path, layout string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G304 -- path is provided by user via CLI
	if err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "# Generated by logsift detect\ntime_format: %q\n", layout)
	if err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}
