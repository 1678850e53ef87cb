package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dmrender/pkg/buildinfo"
)

// newRootCmd builds the root command with all subcommands attached.
// Logging is configured in PersistentPreRun based on the --verbose flag and
// attached to the command context, where loggerFromContext retrieves it.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "dmrender",
		Short:        "dmrender renders encoded data-matrix symbols",
		Long:         `dmrender takes a pre-encoded data-matrix document and renders it as raster images, ASCII art, or DXF vector drawings, framing every alignment region with its handle pattern.`,
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
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the dmrender CLI and returns an error if any command fails.
// This is the main entry point for the CLI application; ctx carries signal
// cancellation from main.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
