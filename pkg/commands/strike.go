package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/runner/strike"
)

func addStrike(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "strike <item id>",
		Aliases: []string{"rm", "remove"},
		Short:   "remove an item from the current list",
		Example: `
pantry strike <item id>
`,
		Args:              requireArgs(1, "an item id"),
		ValidArgsFunction: itemCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := strike.Strike{ID: args[0], App: svc, Out: cmd.OutOrStdout()}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
