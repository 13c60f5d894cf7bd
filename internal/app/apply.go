package app

import (
	"github.com/spf13/cobra"

	"github.com/fmtgate/fmtgate/internal/report"
)

func NewApplyCmd(mgr Manager) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Rewrite all source files with the formatter",
		Long: `Apply runs the formatter in place over every matching file in the configured
source directories. The run stops at the first formatter failure.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every rewritten file")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour && report.StdoutIsTerminal()

		return mgr.Apply(cmd.Context(), RunOptions{
			Verbose:   verbose,
			Format:    string(outputVal),
			UseColour: useColour,
		})
	}

	return cmd
}
