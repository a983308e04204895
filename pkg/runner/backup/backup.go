// Package backup contains the export and import runners.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/pantry/pkg/app"
	"tableflip.dev/pantry/pkg/printers"
)

// Export writes every list to a timestamped JSON file in Dir, or to Out when
// Dir is "-".
type Export struct {
	Dir string
	App *app.Service
	Out io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not export, no app")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	if n.Dir == "-" {
		return n.App.Export(out)
	}

	dir, err := homedir.Expand(n.Dir)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, n.App.ExportName())
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := n.App.Export(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, path)
	return err
}

// Import replaces every list with the contents of a backup file. A file that
// fails validation leaves the stored lists untouched.
type Import struct {
	Path string
	App  *app.Service
	Out  io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not import, no app")
	}
	var r io.Reader = os.Stdin
	if n.Path != "" && n.Path != "-" {
		path, err := homedir.Expand(n.Path)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := n.App.Import(r); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Lists(n.App.Lists(), n.App.Current().ID)
	return nil
}
