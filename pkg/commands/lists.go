package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/lists"
)

func addLists(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "show and manage lists",
		Example: `
pantry lists
pantry lists new Hardware --theme "#e67e22"
pantry lists switch Hardware
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLists(cmd, lists.Lists{Action: lists.Show})
		},
	}

	var theme string
	create := &cobra.Command{
		Use:     "new <name>",
		Aliases: []string{"create", "add"},
		Short:   "create a list and switch to it",
		Args:    requireArgs(1, "a list name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLists(cmd, lists.Lists{Action: lists.Create, Name: strings.Join(args, " "), Theme: theme})
		},
	}
	create.Flags().StringVar(&theme, "theme", "", "Accent colour, e.g. #4a90e2.")

	var name, editTheme string
	edit := &cobra.Command{
		Use:               "edit <list>",
		Short:             "rename a list or change its theme",
		Args:              requireArgs(1, "a list id or name"),
		ValidArgsFunction: listArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLists(cmd, lists.Lists{Action: lists.Edit, Ref: strings.Join(args, " "), Name: name, Theme: editTheme})
		},
	}
	edit.Flags().StringVar(&name, "name", "", "New name. Empty keeps the current one.")
	edit.Flags().StringVar(&editTheme, "theme", "", "New accent colour. Empty keeps the current one.")

	sw := &cobra.Command{
		Use:               "switch <list>",
		Aliases:           []string{"use"},
		Short:             "make a list current",
		Args:              requireArgs(1, "a list id or name"),
		ValidArgsFunction: listArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLists(cmd, lists.Lists{Action: lists.Switch, Ref: strings.Join(args, " ")})
		},
	}

	del := &cobra.Command{
		Use:               "delete <list>",
		Aliases:           []string{"rm"},
		Short:             options.Wrap80("delete a list; the last remaining list cannot be deleted"),
		Args:              requireArgs(1, "a list id or name"),
		ValidArgsFunction: listArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLists(cmd, lists.Lists{Action: lists.Delete, Ref: strings.Join(args, " ")})
		},
	}

	cmd.AddCommand(create, edit, sw, del)
	topLevel.AddCommand(cmd)
}

func runLists(cmd *cobra.Command, l lists.Lists) error {
	return run(cmd, func(ctx context.Context, svc *app.Service) error {
		l.App = svc
		l.Out = cmd.OutOrStdout()
		return l.Do(ctx)
	})
}

func listArgCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}
