// Package lists contains runners for list management commands.
package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/printers"
)

// Action is the list operation to run.
type Action string

const (
	Show   Action = "show"
	Create Action = "create"
	Edit   Action = "edit"
	Switch Action = "switch"
	Delete Action = "delete"
)

// Lists configures the parameters for `pantry lists`.
type Lists struct {
	Action Action
	Ref    string // list id or name
	Name   string
	Theme  string
	App    *app.Service
	Out    io.Writer
}

// Do runs the action and prints the resulting lists table.
func (n *Lists) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not manage lists, no app")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	switch n.Action {
	case "", Show:
	case Create:
		if _, err := n.App.AddList(n.Name, n.Theme); err != nil {
			return err
		}
	case Edit, Switch, Delete:
		id, err := n.resolve()
		if err != nil {
			return err
		}
		switch n.Action {
		case Edit:
			err = n.App.RenameList(id, n.Name, n.Theme)
		case Switch:
			err = n.App.SwitchList(id)
		case Delete:
			err = n.App.DeleteList(id)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown list action %q", n.Action)
	}

	pp.Lists(n.App.Lists(), n.App.Current().ID)
	return nil
}

// resolve maps Ref to a list id. Ids win over names; an unknown ref is passed
// through so the service reports it as not found.
func (n *Lists) resolve() (string, error) {
	ref := strings.TrimSpace(n.Ref)
	if ref == "" {
		return n.App.Current().ID, nil
	}
	lists := n.App.Lists()
	for _, l := range lists {
		if l.ID == ref {
			return l.ID, nil
		}
	}
	for _, l := range lists {
		if strings.EqualFold(l.Name, ref) {
			return l.ID, nil
		}
	}
	return ref, nil
}
