package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/commands/options"
	"tableflip.dev/pantry/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "reprint the current list whenever it changes",
		Example: `
pantry watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := watch.Watch{
					ShowID:  io.ShowID,
					Stocked: mo.Stocked,
					App:     svc,
					Out:     cmd.OutOrStdout(),
					Log:     vo.Logger(),
				}
				return s.Do(ctx)
			})
		},
	}

	options.AddStockedArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
