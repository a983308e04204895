package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/sections"
)

func addSections(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "section",
		Aliases: []string{"sections"},
		Short:   "manage the sections of the current list",
		Long: options.Wrap80("Home and shop have independent sections. Every command works on " +
			"the active mode unless --mode is given."),
		Example: `
pantry section new Dairy --mode shop
pantry section move Bakery --before Dairy --mode shop
pantry section delete Freezer
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVarP(&mo.Mode, "mode", "m", "",
		"Mode to work in, one of 'home' or 'shop'. Defaults to the active mode.")
	cmd.PersistentFlags().BoolVarP(&io.ShowID, "show-id", "k", false,
		"Show the ID of items and sections.")

	runSection := func(c *cobra.Command, s sections.Sections) error {
		return run(c, func(ctx context.Context, svc *app.Service) error {
			s.Mode = mo.Mode
			s.ShowID = io.ShowID
			s.App = svc
			s.Out = c.OutOrStdout()
			return s.Do(ctx)
		})
	}
	sectionArgs := func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return sectionCompletions(mo.Mode, toComplete), cobra.ShellCompDirectiveNoFileComp
	}

	create := &cobra.Command{
		Use:     "new <name>",
		Aliases: []string{"add", "create"},
		Short:   "append a section",
		Args:    requireArgs(1, "a section name"),
		RunE: func(c *cobra.Command, args []string) error {
			return runSection(c, sections.Sections{Action: sections.Create, Name: strings.Join(args, " ")})
		},
	}

	rename := &cobra.Command{
		Use:               "rename <section> <name>",
		Short:             "rename a section",
		Args:              requireArgs(2, "a section and its new name"),
		ValidArgsFunction: sectionArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runSection(c, sections.Sections{Action: sections.Rename, Ref: args[0], Name: strings.Join(args[1:], " ")})
		},
	}

	del := &cobra.Command{
		Use:               "delete <section>",
		Aliases:           []string{"rm"},
		Short:             options.Wrap80("delete a section; its items move to the end of the default section"),
		Args:              requireArgs(1, "a section"),
		ValidArgsFunction: sectionArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runSection(c, sections.Sections{Action: sections.Delete, Ref: strings.Join(args, " ")})
		},
	}

	var before string
	mv := &cobra.Command{
		Use:               "move <section> --before <section>",
		Short:             "place a section in front of another",
		Args:              requireArgs(1, "a section"),
		ValidArgsFunction: sectionArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runSection(c, sections.Sections{Action: sections.Move, Ref: strings.Join(args, " "), Before: before})
		},
	}
	mv.Flags().StringVarP(&before, "before", "b", "", "Section id or name to land in front of.")
	_ = mv.MarkFlagRequired("before")

	cmd.AddCommand(create, rename, del, mv)
	topLevel.AddCommand(cmd)
}
