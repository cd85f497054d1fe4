package cli

import (
	"github.com/spf13/cobra"
)

// Options contains the parsed command-line arguments
type Options struct {
	Path    string
	Scale   string
	Columns []string
	NoUI    bool
	Version bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{}

	root := buildRootCommand(result)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kelvin <log-file>",
		Short: "A terminal viewer for binary cryostat log files",
		Long: `Kelvin plots the channels of a binary cryostat log file in the
terminal and keeps the plot in step with a file that is still being
written.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				result.Path = args[0]
			}
		},
	}

	cmd.Flags().BoolVar(&result.NoUI, "no-ui", false, "Print a file summary instead of the TUI")
	cmd.Flags().StringVar(&result.Scale, "scale", "", "Initial scale mode: linear, normalized or log")
	cmd.Flags().StringSliceVar(&result.Columns, "columns", nil, "Plot only the named channels, in order")
	cmd.Flags().BoolVarP(&result.Version, "version", "v", false, "Show version information")

	return cmd
}
