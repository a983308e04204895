// Package watch reprints the current list whenever the store changes.
package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/printers"
	"tableflip.dev/pantry/pkg/view"
)

type Watch struct {
	ShowID  bool
	Stocked bool
	App     *app.Service
	Out     io.Writer
	Log     *slog.Logger
}

// Do prints once, then again after every change until ctx is done.
func (n *Watch) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not watch, no app")
	}
	log := n.Log
	if log == nil {
		log = slog.Default()
	}

	events, err := n.App.Watch(ctx)
	if err != nil {
		return err
	}
	n.print()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.Debug("store changed", "event", ev.Type)
			if err := n.App.Reload(ctx); err != nil {
				log.Error("reload failed", "err", err)
				continue
			}
			n.print()
		}
	}
}

func (n *Watch) print() {
	var opts []view.Option
	if n.Stocked {
		opts = append(opts, view.WithStocked())
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.View(n.App.View(opts...))
}
