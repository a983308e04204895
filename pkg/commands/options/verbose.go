package options

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// VerboseOptions controls diagnostic logging.
type VerboseOptions struct {
	Verbose bool
}

func AddVerboseArg(cmd *cobra.Command, o *VerboseOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log diagnostics to stderr.")
}

// Logger returns a stderr logger at debug level when verbose, warn otherwise.
func (o *VerboseOptions) Logger() *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
