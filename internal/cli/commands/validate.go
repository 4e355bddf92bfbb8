package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logsift/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile>",
		Short: "Validate a profile file",
		Long: `Load a profile file and report any configuration errors: unknown
levels, unparseable timestamp bounds, inverted time ranges, or invalid
regular expressions. On success a short summary of the profile is
printed.

Examples:
  logsift validate logsift.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := config.Load(ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profile %s is valid.\n", args[0])
	fmt.Fprintf(out, "  time_format: %s\n", profile.TimeFormat)
	if profile.From != "" {
		fmt.Fprintf(out, "  from:        %s\n", profile.From)
	}
	if profile.To != "" {
		fmt.Fprintf(out, "  to:          %s\n", profile.To)
	}
	if len(profile.Levels) > 0 {
		fmt.Fprintf(out, "  levels:      %s\n", strings.Join(profile.Levels, ", "))
	}
	if profile.Match != "" {
		fmt.Fprintf(out, "  match:       %s\n", profile.Match)
	}
	if profile.Regex != "" {
		fmt.Fprintf(out, "  regex:       %s\n", profile.Regex)
	}
	fmt.Fprintf(out, "  interval:    %s\n", profile.Interval)
	return nil
}
