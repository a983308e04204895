package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	io := &options.IDOptions{}
	var (
		section    string
		have, want int
	)

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "add an item to the current list",
		Long: options.Wrap80("Add an item. It lands at the end of --section in --mode and at the " +
			"end of the first section of the other mode."),
		Example: `
pantry add oat milk
pantry add eggs --section Dairy --mode shop --want 12
`,
		Args: requireArgs(1, "the item text"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := add.Add{
					Text:    strings.Join(args, " "),
					Section: section,
					Mode:    mo.Mode,
					Have:    have,
					Want:    want,
					ShowID:  io.ShowID,
					App:     svc,
					Out:     cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "Section id or name. Defaults to the first section.")
	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return sectionCompletions(mo.Mode, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().IntVar(&have, "have", 0, "Units already on hand.")
	cmd.Flags().IntVar(&want, "want", 1, "Units to keep stocked.")
	options.AddModeArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
