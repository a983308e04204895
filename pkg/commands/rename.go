package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/printers"
)

func addRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <item id> <text>",
		Short: "change an item's text",
		Example: `
pantry rename <item id> whole milk
`,
		Args:              requireArgs(2, "an item id and the new text"),
		ValidArgsFunction: itemCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				if err := svc.RenameItem(args[0], strings.Join(args[1:], " ")); err != nil {
					return err
				}
				it, err := svc.Current().Item(args[0])
				if err != nil {
					return err
				}
				pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
				pp.Section(svc.Mode(), it)
				return nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
