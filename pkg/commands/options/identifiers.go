package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls whether item and section ids are printed. The ids are
// what move, track, strike and section take as arguments.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Print ids next to items and sections.")
}
