// Package mode contains the runner behind `pantry mode`.
package mode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/list"
)

// Mode prints the active mode, or switches to Set. Switching from shop back to
// home settles every checked-off item on the current list.
type Mode struct {
	Set string
	App *app.Service
	Out io.Writer
}

func (n *Mode) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not set mode, no app")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	if n.Set != "" {
		m, err := list.ParseMode(n.Set)
		if err != nil {
			return err
		}
		if err := n.App.SetMode(m); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, n.App.Mode())
	return err
}
