package app

import (
	"github.com/spf13/cobra"

	"github.com/fmtgate/fmtgate/internal/report"
)

func NewCheckCmd(mgr Manager) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that all source files match the formatter's output",
		Long: `Check runs the formatter over every matching file without touching it, and
compares the output byte-for-byte against the file on disk. Files that deviate
are listed with a unified diff. The command exits non-zero when any file needs
formatting, which makes it suitable as a CI gate.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List files that are already formatted")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour && report.StdoutIsTerminal()

		return mgr.Check(cmd.Context(), RunOptions{
			Verbose:   verbose,
			Format:    string(outputVal),
			UseColour: useColour,
		})
	}

	return cmd
}
