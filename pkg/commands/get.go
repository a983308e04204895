package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	io := &options.IDOptions{}
	var listRef string

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show", "ls"},
		Short:   "show the current list",
		Long: options.Wrap80("Show a list grouped into the sections of one mode. Home shows " +
			"everything with have/want counts; shop shows only what still needs buying."),
		Example: `
pantry get
pantry get --mode shop
pantry get --list Hardware --mode home -k
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				id := ""
				if listRef != "" {
					for _, l := range svc.Lists() {
						if l.ID == listRef || l.Name == listRef {
							id = l.ID
							break
						}
					}
					if id == "" {
						id = listRef
					}
				}
				s := get.Get{
					ShowID:  io.ShowID,
					ListID:  id,
					Mode:    mo.Mode,
					Stocked: mo.Stocked,
					App:     svc,
					Out:     cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&listRef, "list", "l", "", "List id or name. Defaults to the current list.")
	_ = cmd.RegisterFlagCompletionFunc("list", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddModeArgs(cmd, mo)
	options.AddStockedArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
