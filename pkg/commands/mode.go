package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/runner/mode"
)

func addMode(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mode [home|shop]",
		Short: "print or switch the active mode",
		Long: `Print the active mode, or switch it.

Switching from shop back to home settles the trip: every checked-off item on
the current list is marked fully stocked and unchecked.`,
		Example: `
pantry mode
pantry mode shop
`,
		ValidArgs: []string{"home", "shop"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := mode.Mode{App: svc, Out: cmd.OutOrStdout()}
				if len(args) == 1 {
					s.Set = args[0]
				}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
