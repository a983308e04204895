// Package get prints a list as it looks in one mode.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/printers"
	"tableflip.dev/pantry/pkg/view"
)

type Get struct {
	ShowID  bool
	ListID  string
	Mode    string
	Stocked bool
	App     *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no app")
	}

	mode := n.App.Mode()
	if n.Mode != "" {
		var err error
		if mode, err = list.ParseMode(n.Mode); err != nil {
			return err
		}
	}
	id := n.ListID
	if id == "" {
		id = n.App.Current().ID
	}

	var opts []view.Option
	if n.Stocked {
		opts = append(opts, view.WithStocked())
	}
	v, err := n.App.ViewOf(id, mode, opts...)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.View(v)
	return nil
}
