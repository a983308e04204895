// Package move contains the runner that reorders items.
package move

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/printers"
	"tableflip.dev/pantry/pkg/view"
)

// Move places an item before another item, or at the end of a section.
type Move struct {
	ID      string
	Mode    string
	Section string // destination section id or name; empty keeps the current one
	Before  string // item id
	ShowID  bool
	App     *app.Service
	Out     io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not move, no app")
	}
	mode := n.App.Mode()
	if n.Mode != "" {
		var err error
		if mode, err = list.ParseMode(n.Mode); err != nil {
			return err
		}
	}
	cur := n.App.Current()
	dest := ""
	if n.Section != "" {
		sec, err := cur.SectionByRef(mode, n.Section)
		if err != nil {
			return err
		}
		dest = sec.ID
	}
	if dest == "" && n.Before == "" {
		return list.InvalidOperationError{Op: "move item", Reason: "a destination section or a before id is required"}
	}
	if err := n.App.MoveItem(mode, n.ID, dest, n.Before); err != nil {
		return err
	}

	v, err := n.App.ViewOf(cur.ID, mode, view.WithStocked())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.View(v)
	return nil
}
