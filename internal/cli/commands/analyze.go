package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"logsift/pkg/output"
)

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	FilterOptions
	Out string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Filter and print log lines",
		Long: `Filter and print log lines from a file, a directory (scanned
recursively), a glob pattern, or stdin when the path is omitted or "-".
Files ending in .gz are decompressed transparently.

Lines pass when they satisfy every configured filter: level set,
timestamp bounds (inclusive), substring, and regex.

Examples:
  logsift analyze app.log --level error --level warn
  logsift analyze /var/log/myapp --from "2025-11-23 00:00:00"
  zcat old.log.gz | logsift analyze --match "db timeout"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	addFilterFlags(cmd, &opts.FilterOptions)
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write filtered lines to a file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, parser, flt, err := opts.resolve(ctx)
	if err != nil {
		return err
	}

	src, err := openSource(optionalPathArg(args), parser)
	if err != nil {
		return err
	}
	defer src.Close()

	var w io.Writer = cmd.OutOrStdout()
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	renderer := output.NewRawRenderer(w)

	for {
		rec, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading log source: %w", err)
		}
		if !flt.Keep(*rec) {
			continue
		}
		if err := renderer.Render(*rec); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}
