// Package track provides the runner that adjusts stock counts.
package track

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/printers"
)

// Track applies have/want deltas to an item. Counts never drop below zero.
type Track struct {
	ID     string
	Have   int
	Want   int
	ShowID bool
	App    *app.Service
	Out    io.Writer
}

// Do applies the deltas and reprints the item.
func (n *Track) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not track, no app")
	}
	it, err := n.App.Current().Item(n.ID)
	if err != nil {
		return err
	}
	if n.Have != 0 {
		if it, err = n.App.AdjustHave(n.ID, n.Have); err != nil {
			return err
		}
	}
	if n.Want != 0 {
		if it, err = n.App.AdjustWant(n.ID, n.Want); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Section(list.Home, it)
	return nil
}
