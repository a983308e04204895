// Package add contains the runner behind `pantry add`.
package add

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/printers"
)

// Add creates an item on the current list.
type Add struct {
	Text    string
	Section string // id or name; empty means the first section
	Mode    string // the mode Section refers to; empty means the active mode
	Have    int
	Want    int
	ShowID  bool
	App     *app.Service
	Out     io.Writer
}

// Do adds the item and prints it.
func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no app")
	}
	text := strings.TrimSpace(n.Text)
	if text == "" {
		return list.InvalidOperationError{Op: "add item", Reason: "text is required"}
	}

	mode := n.App.Mode()
	if n.Mode != "" {
		var err error
		if mode, err = list.ParseMode(n.Mode); err != nil {
			return err
		}
	}
	sectionID := ""
	if n.Section != "" {
		sec, err := n.App.Current().SectionByRef(mode, n.Section)
		if err != nil {
			return err
		}
		sectionID = sec.ID
	}

	it, err := n.App.AddItem(mode, sectionID, text)
	if err != nil {
		return err
	}
	if n.Have > 0 {
		if it, err = n.App.AdjustHave(it.ID, n.Have); err != nil {
			return err
		}
	}
	if n.Want > 0 && n.Want != it.WantCount {
		if it, err = n.App.AdjustWant(it.ID, n.Want-it.WantCount); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Section(list.Home, it)
	return nil
}
