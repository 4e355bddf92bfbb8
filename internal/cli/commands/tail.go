package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"logsift/pkg/follow"
	"logsift/pkg/logline"
	"logsift/pkg/output"
)

// TailOptions holds command-line options for the tail command.
type TailOptions struct {
	FilterOptions
	Interval  time.Duration
	FromStart bool
	Color     bool
}

// NewTailCommand creates the tail command.
func NewTailCommand() *cobra.Command {
	opts := &TailOptions{}

	cmd := &cobra.Command{
		Use:   "tail <path>",
		Short: "Follow a log file and print new matching lines",
		Long: `Follow a single log file, printing newly appended lines that pass
the configured filters. The file is polled for growth; truncation and
rotation reset the read position to the start of the new content, and a
vanished file is reported once and re-checked until it returns.

Stop with Ctrl-C.

Examples:
  logsift tail app.log
  logsift tail app.log --level error --interval 2s
  logsift tail app.log --from-start --color`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTail(cmd, args, opts)
		},
	}

	addFilterFlags(cmd, &opts.FilterOptions)
	cmd.Flags().DurationVarP(&opts.Interval, "interval", "i", follow.DefaultInterval, "Poll interval")
	cmd.Flags().BoolVar(&opts.FromStart, "from-start", false, "Read the file from the beginning instead of the current end")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "Colorize output by detected severity level")

	return cmd
}

func runTail(cmd *cobra.Command, args []string, opts *TailOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile, parser, flt, err := opts.resolve(ctx)
	if err != nil {
		return err
	}

	interval := profile.Interval
	if cmd.Flags().Changed("interval") {
		interval = opts.Interval
	}
	fromStart := profile.FromStart
	if cmd.Flags().Changed("from-start") {
		fromStart = opts.FromStart
	}

	follower, err := follow.New(follow.Config{
		Path:      args[0],
		FromStart: fromStart,
		Interval:  interval,
		Filter:    flt,
		Parser:    parser,
	}, follow.WithReporter(func(err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}))
	if err != nil {
		return err
	}

	var renderer output.Renderer
	if opts.Color {
		renderer = output.NewColorRenderer(cmd.OutOrStdout())
	} else {
		renderer = output.NewRawRenderer(cmd.OutOrStdout())
	}

	err = follower.Run(ctx, func(rec logline.Record) error {
		return renderer.Render(rec)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
