package options

import (
	"github.com/spf13/cobra"
)

// ModeOptions selects which of the two views a command works in.
type ModeOptions struct {
	Mode    string
	Stocked bool
}

func AddModeArgs(cmd *cobra.Command, o *ModeOptions) {
	cmd.Flags().StringVarP(&o.Mode, "mode", "m", "",
		Wrap80("Mode to work in, one of 'home' or 'shop'. Defaults to the active mode."))
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"home", "shop"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func AddStockedArgs(cmd *cobra.Command, o *ModeOptions) {
	cmd.Flags().BoolVar(&o.Stocked, "stocked", false,
		"Include fully stocked items in shop mode.")
}
