package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/track"
)

func addTrack(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var have, want int

	cmd := &cobra.Command{
		Use:   "track <item id>",
		Short: "adjust how many of an item you have or want",
		Long:  options.Wrap80("Apply relative changes to the have and want counts. Counts never go below zero."),
		Example: `
pantry track <item id> --have +2
pantry track <item id> --want -1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an item id")
			}
			if have == 0 && want == 0 {
				return errors.New("nothing to track, set --have or --want")
			}
			return nil
		},
		ValidArgsFunction: itemCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := track.Track{
					ID:     args[0],
					Have:   have,
					Want:   want,
					ShowID: io.ShowID,
					App:    svc,
					Out:    cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	cmd.Flags().IntVar(&have, "have", 0, "Change to the on-hand count.")
	cmd.Flags().IntVar(&want, "want", 0, "Change to the wanted count.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
