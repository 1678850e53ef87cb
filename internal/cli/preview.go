package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dmrender/pkg/pipeline"
)

// newPreviewCmd creates the preview command for inspecting a symbol in the
// terminal before committing to an output format.
func newPreviewCmd() *cobra.Command {
	var quietZone int

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview the transformed symbol in the terminal",
		Long: `Preview loads a symbol document, grows the alignment border and handles,
and shows the finished symbol as ASCII art together with its geometry.
Press i to toggle the inverse view and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], quietZone)
		},
	}

	cmd.Flags().IntVar(&quietZone, "quiet-zone", 0, "blank margin width around the symbol in cells")

	return cmd
}

// runPreview builds the symbol and hands it to the interactive viewer.
func runPreview(ctx context.Context, input string, quietZone int) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	opts := pipeline.Options{Input: input, QuietZone: quietZone, Logger: logger}

	doc, g, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	sym, err := runner.BuildSymbol(ctx, g, doc.Regions, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %dx%d symbol", sym.Width(), sym.Height()))

	model := newPreviewModel(input, doc.Regions, sym)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
