package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/printers"
	"tableflip.dev/pantry/pkg/store"
)

var (
	oo = &options.OutputOptions{}
	vo = &options.VerboseOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pantry",
		Short: options.Wrap80("Keep the house stocked: sectioned shopping lists with a home and a shop view."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddVerboseArg(cmd, vo)
	options.AddOutputArg(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addAdd(topLevel)
	addComplete(topLevel)
	addStrike(topLevel)
	addTrack(topLevel)
	addMove(topLevel)
	addRename(topLevel)
	addMode(topLevel)
	addLists(topLevel)
	addSections(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadApp wires config, storage and the app service for a command.
func loadApp(ctx context.Context) (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.New(ctx, p,
		app.WithDefaultTheme(cfg.DefaultTheme()),
		app.WithLogger(vo.Logger()),
	)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// run loads the app, hands it to fn and reports the outcome. A stale id is a
// warning, not a failure.
func run(cmd *cobra.Command, fn func(ctx context.Context, svc *app.Service) error) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, _, err := loadApp(ctx)
	if err != nil {
		return oo.HandleError(cmd.OutOrStdout(), err)
	}
	err = fn(ctx, svc)
	if errors.Is(err, list.ErrNotFound) && !oo.JSON {
		pp := printers.PrettyPrint{Out: cmd.ErrOrStderr()}
		pp.Warn("nothing to do: %v", err)
		return nil
	}
	return oo.HandleError(cmd.OutOrStdout(), err)
}

func requireArgs(n int, what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("requires %s", what)
		}
		return nil
	}
}

// itemCompletions offers ids of the current list's items, described by text.
func itemCompletions(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	svc, _, err := loadApp(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, it := range svc.Current().Items {
		if strings.HasPrefix(it.ID, toComplete) {
			out = append(out, it.ID+"\t"+it.Text)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func listCompletions(toComplete string) []string {
	svc, _, err := loadApp(context.Background())
	if err != nil {
		return nil
	}
	var out []string
	for _, l := range svc.Lists() {
		if strings.HasPrefix(strings.ToLower(l.Name), strings.ToLower(toComplete)) {
			out = append(out, strconv.Quote(l.Name))
		}
	}
	return out
}

func sectionCompletions(mode, toComplete string) []string {
	svc, _, err := loadApp(context.Background())
	if err != nil {
		return nil
	}
	m := svc.Mode()
	if mode != "" {
		if parsed, err := list.ParseMode(mode); err == nil {
			m = parsed
		}
	}
	var out []string
	for _, s := range svc.Current().Sections(m) {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(toComplete)) {
			out = append(out, strconv.Quote(s.Name))
		}
	}
	return out
}
