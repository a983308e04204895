package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/runner/backup"
)

func addExport(topLevel *cobra.Command) {
	dir := "."
	cmd := &cobra.Command{
		Use:   "export",
		Short: "write every list to a timestamped JSON backup",
		Example: `
pantry export
pantry export --dir ~/backups
pantry export --dir - > pantry.json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := backup.Export{Dir: dir, App: svc, Out: cmd.OutOrStdout()}
				return s.Do(ctx)
			})
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write the backup into, or - for stdout.")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "replace every list with the contents of a backup",
		Long: `Replace every list with the contents of a backup written by export.

The file is checked before anything changes; an invalid file leaves the stored
lists as they were. Older single-list files are upgraded on the way in.`,
		Example: `
pantry import 2024-03-09T14-30-05.json
cat backup.json | pantry import -
`,
		Args: requireArgs(1, "a backup file, or - for stdin"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Service) error {
				s := backup.Import{Path: args[0], App: svc, Out: cmd.OutOrStdout()}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
