package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/printers"
)

// Complete toggles the shop checkbox of an item.
type Complete struct {
	ID     string
	ShowID bool
	App    *app.Service
	Out    io.Writer
}

func (n *Complete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not complete, no app")
	}
	it, err := n.App.ToggleShopCompleted(n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Section(list.Shop, it)
	return nil
}
