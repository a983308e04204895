package strike

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/printers"
)

// Strike removes an item from the current list.
type Strike struct {
	ID  string
	App *app.Service
	Out io.Writer
}

func (n *Strike) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not strike, no app")
	}
	it, err := n.App.Current().Item(n.ID)
	if err != nil {
		return err
	}
	if err := n.App.DeleteItem(n.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Warn("removed %s", it.Text)
	return nil
}
