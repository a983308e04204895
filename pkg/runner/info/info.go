package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/printers"
	"tableflip.dev/pantry/pkg/store"
)

type Info struct {
	Config store.Config
	App    *app.Service
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv+" found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv+" env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.theme:", n.Config.DefaultTheme())

	if n.App == nil {
		return fmt.Errorf("Failed to create app service.")
	}

	_, _ = fmt.Fprintf(out, "Mode: %s\n", n.App.Mode())
	_, _ = fmt.Fprintf(out, "Lists:\n")
	pp := printers.PrettyPrint{Out: out}
	pp.Lists(n.App.Lists(), n.App.Current().ID)

	return nil
}
