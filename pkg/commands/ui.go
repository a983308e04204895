package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	teaui "tableflip.dev/pantry/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Long: `Open the interactive list editor.

Move with j/k, grab an item or section with space, move it and press space
again to drop it. Esc cancels a drag, tab switches between home and shop,
? lists every key.`,
		Example: `
pantry ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				return teaui.Run(ctx, svc)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
