package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mpelleau/cnf2lightswitch/pkg/buildinfo"
)

// Execute runs the cnf2lightswitch CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, solve,
// preview, serve, completion), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. The passed ctx is the root of every command context, so
// cancelling it (e.g. on SIGINT) aborts long enumerations and the HTTP server.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cnf2lightswitch",
		Short:        "cnf2lightswitch draws CNF formulas as lights-and-switches circuits",
		Long:         `cnf2lightswitch translates DIMACS CNF formulas into vector-graphics slide decks where every variable is a switch, every clause is a light, and every satisfying assignment becomes an animation layer.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
