package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <item id>",
		Aliases: []string{"done", "check"},
		Short:   "check an item off (or back on) the shopping trip",
		Example: `
pantry complete <item id>
`,
		Args:              requireArgs(1, "an item id"),
		ValidArgsFunction: itemCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := complete.Complete{
					ID:     args[0],
					ShowID: io.ShowID,
					App:    svc,
					Out:    cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
