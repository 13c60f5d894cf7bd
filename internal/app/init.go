package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmtgate/fmtgate/internal/config"
	"github.com/fmtgate/fmtgate/internal/fs"
)

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented fmtgate.yml to the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fs.FileExists(config.FmtgateConfigFile) {
				return fmt.Errorf("%s already exists, not overwriting", config.FmtgateConfigFile)
			}

			if err := os.WriteFile(config.FmtgateConfigFile, []byte(config.DefaultConfigContent), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", config.FmtgateConfigFile, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FmtgateConfigFile)
			return nil
		},
	}

	return cmd
}
