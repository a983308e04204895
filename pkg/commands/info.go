package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about lists and where they are stored.",
		Example: `
pantry info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadApp(cmd.Context())
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			s := info.Info{
				Config: cfg,
				App:    svc,
				Out:    cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	topLevel.AddCommand(cmd)
}
