package app

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func NewWatchCmd(mgr Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Format source files as they are saved",
		Long: `Watch monitors the configured source directories and reformats any matching
file as soon as it is written. Press Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := mgr.Watch(cmd.Context(), nil)
			if errors.Is(err, context.Canceled) {
				// Ctrl+C is the normal way out of watch mode
				return nil
			}
			return err
		},
	}

	return cmd
}
