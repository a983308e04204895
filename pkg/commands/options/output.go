package options

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/list"
)

// OutputOptions switches error reporting to JSON for scripts.
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&o.JSON, "json", false,
		"Report errors as a JSON object on stdout.")
}

type jsonError struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HandleError passes err through unchanged unless JSON output is on, in which
// case err is written to w and swallowed.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if err == nil || !o.JSON {
		return err
	}
	return json.NewEncoder(w).Encode(jsonError{Error: err.Error(), Kind: ErrorKind(err)})
}

// ErrorKind names the class of a pantry error, or "" for anything else.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, list.ErrNotFound):
		return "not_found"
	case errors.Is(err, list.ErrInvalidOperation):
		return "invalid_operation"
	case errors.Is(err, list.ErrMalformedImport):
		return "malformed_import"
	}
	return ""
}
