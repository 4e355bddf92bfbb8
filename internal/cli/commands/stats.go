package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"logsift/pkg/output"
	"logsift/pkg/stats"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	FilterOptions
	Format string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Compute statistics over filtered log lines",
		Long: `Compute statistics over log lines from a file, directory, glob
pattern, or stdin: total line count, counts by severity level, counts
by hour bucket, and the observed time span. All filters apply before
aggregation.

Examples:
  logsift stats app.log
  logsift stats /var/log/myapp --level error --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	addFilterFlags(cmd, &opts.FilterOptions)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format (json|markdown)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *StatsOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, ok := output.NewFormatter(opts.Format)
	if !ok {
		return fmt.Errorf("unknown output format %q (use json or markdown)", opts.Format)
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

	collector := stats.NewCollector()
	for {
		rec, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading log source: %w", err)
		}
		if flt.Keep(*rec) {
			collector.Observe(*rec)
		}
	}

	if err := formatter.Format(ctx, collector.Snapshot(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
