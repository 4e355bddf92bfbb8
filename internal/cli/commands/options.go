package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logsift/pkg/config"
	"logsift/pkg/filter"
	"logsift/pkg/logline"
	"logsift/pkg/source"
)

// FilterOptions holds the filter flags shared by analyze, stats, and tail.
type FilterOptions struct {
	ConfigPath string
	TimeFormat string
	From       string
	To         string
	Levels     []string
	Match      string
	Regex      string
}

// addFilterFlags registers the shared filter flags on a command.
func addFilterFlags(cmd *cobra.Command, opts *FilterOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML profile supplying defaults for these flags")
	flags.StringVar(&opts.TimeFormat, "time-format", "", `Go time layout of the line prefix (default "2006-01-02 15:04:05")`)
	flags.StringVar(&opts.From, "from", "", "Inclusive lower timestamp bound (written in the time format)")
	flags.StringVar(&opts.To, "to", "", "Inclusive upper timestamp bound (written in the time format)")
	flags.StringSliceVarP(&opts.Levels, "level", "l", nil, "Log level to include (can be repeated)")
	flags.StringVarP(&opts.Match, "match", "m", "", "Case-sensitive substring to match")
	flags.StringVarP(&opts.Regex, "regex", "r", "", "Regular expression to search for")
}

// resolve merges profile defaults with flag overrides and compiles the
// filter. Any configuration problem surfaces here, before input is read.
func (o *FilterOptions) resolve(ctx context.Context) (*config.Profile, *logline.Parser, *filter.Filter, error) {
	profile := config.DefaultProfile()
	if o.ConfigPath != "" {
		p, err := config.Load(ctx, o.ConfigPath)
		if err != nil {
			return nil, nil, nil, err
		}
		profile = p
	}

	layout := profile.TimeFormat
	if o.TimeFormat != "" {
		layout = o.TimeFormat
	}

	spec := profile.FilterSpec()
	if o.From != "" {
		ts, err := filter.ParseBound(o.From, layout)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("--from: %w", err)
		}
		spec.From = ts
	}
	if o.To != "" {
		ts, err := filter.ParseBound(o.To, layout)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("--to: %w", err)
		}
		spec.To = ts
	}
	if len(o.Levels) > 0 {
		spec.Levels = o.Levels
	}
	if o.Match != "" {
		spec.Match = o.Match
	}
	if o.Regex != "" {
		spec.Regex = o.Regex
	}

	flt, err := spec.Compile()
	if err != nil {
		return nil, nil, nil, err
	}

	return profile, logline.NewParser(layout), flt, nil
}

// openSource resolves a path argument into a line source: stdin when the
// path is empty or "-", otherwise a file, directory, or glob expansion.
// Multi-file scans tolerate unreadable files, reporting them to stderr;
// a single explicit source that cannot be read fails the invocation.
func openSource(path string, parser *logline.Parser) (source.Source, error) {
	if path == "" || path == "-" {
		return source.NewReaderSource(os.Stdin, source.StdinName, parser), nil
	}

	files, multi, err := source.Expand(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files found under %s", path)
	}

	var opts []source.FileOption
	if multi {
		opts = append(opts, source.SkipErrors(func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}))
	}
	return source.NewFileSource(files, parser, opts...), nil
}

// optionalPathArg returns the single optional positional argument.
func optionalPathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
