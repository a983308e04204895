package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	io := &options.IDOptions{}
	var section, before string

	cmd := &cobra.Command{
		Use:   "move <item id>",
		Short: "reorder an item within one mode",
		Long: options.Wrap80("Move an item before another item, or to the end of a section. " +
			"Only the given mode changes; the item keeps its place in the other mode."),
		Example: `
pantry move <item id> --before <item id>
pantry move <item id> --section Freezer --mode home
`,
		Args:              requireArgs(1, "an item id"),
		ValidArgsFunction: itemCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := move.Move{
					ID:      args[0],
					Mode:    mo.Mode,
					Section: section,
					Before:  before,
					ShowID:  io.ShowID,
					App:     svc,
					Out:     cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "Destination section id or name.")
	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return sectionCompletions(mo.Mode, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().StringVarP(&before, "before", "b", "", "Item id to land in front of.")
	options.AddModeArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
