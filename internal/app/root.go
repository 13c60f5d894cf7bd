package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fmtgate/fmtgate/internal/config"
	"github.com/fmtgate/fmtgate/internal/formatter"
	"github.com/fmtgate/fmtgate/internal/fs"
	"github.com/fmtgate/fmtgate/internal/style"
)

// Version is the current version of fmtgate, set at build time.
var Version = "dev"

const InitCmdName = "init"

var LongDescription = `
fmtgate keeps a C/C++ source tree formatted with clang-format. Use 'check' as
a CI gate that fails when any file deviates from the canonical style, 'apply'
to rewrite the tree in place, and 'watch' to format files as you save them.

The formatter is looked up next to the fmtgate binary first, then on PATH.
Configuration lives in an optional fmtgate.yml (see 'fmtgate init').
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, envProvider fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "fmtgate",
		Short:         "Apply or verify clang-format across a source tree",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Help, completion and init run without a resolved environment
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			if debug {
				ll.Set(slog.LevelDebug)
			}

			cfg, err := config.Resolve(configPath, envProvider)
			if err != nil {
				return fmt.Errorf("configuration failed: %w", err)
			}

			logger, _, lErr := setupLogger(stderr, ll, envProvider)
			if lErr != nil {
				logger.Warn("logging to file disabled", "error", lErr)
			}

			command := formatter.Locate(cfg.Formatter.Executable)
			runner := formatter.NewCLIRunner(command, cfg.Formatter.Style)
			walker := style.NewWalker(cfg)

			lazy.SetInner(NewCLIManager(logger, cfg, command, runner, walker, cmd.OutOrStdout()))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "", "path to fmtgate.yml (overrides env/working directory)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")

	// Subcommands
	rootCmd.AddCommand(NewCheckCmd(lazy))
	rootCmd.AddCommand(NewApplyCmd(lazy))
	rootCmd.AddCommand(NewWatchCmd(lazy))
	rootCmd.AddCommand(NewInitCmd())

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
