// Package sections contains runners for section management commands.
package sections

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/printers"
	"tableflip.dev/pantry/pkg/view"
)

// Action is the section operation to run.
type Action string

const (
	Create Action = "create"
	Rename Action = "rename"
	Delete Action = "delete"
	Move   Action = "move"
)

// Sections runs one section operation against the current list.
type Sections struct {
	Action Action
	Mode   string
	Ref    string // section id or name
	Name   string
	Before string // section id or name; Move only
	ShowID bool
	App    *app.Service
	Out    io.Writer
}

// Do runs the action and prints the affected mode of the current list.
func (n *Sections) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not manage sections, no app")
	}
	mode := n.App.Mode()
	if n.Mode != "" {
		var err error
		if mode, err = list.ParseMode(n.Mode); err != nil {
			return err
		}
	}

	cur := n.App.Current()
	ref := func(r string) (string, error) {
		s, err := cur.SectionByRef(mode, r)
		return s.ID, err
	}

	switch n.Action {
	case Create:
		if _, err := n.App.AddSection(mode, n.Name); err != nil {
			return err
		}
	case Rename, Delete, Move:
		id, err := ref(n.Ref)
		if err != nil {
			return err
		}
		switch n.Action {
		case Rename:
			err = n.App.RenameSection(mode, id, n.Name)
		case Delete:
			err = n.App.DeleteSection(mode, id)
		case Move:
			var before string
			if before, err = ref(n.Before); err == nil {
				err = n.App.MoveSection(mode, id, before)
			}
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown section action %q", n.Action)
	}

	v, err := n.App.ViewOf(cur.ID, mode, view.WithStocked())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.View(v)
	return nil
}
