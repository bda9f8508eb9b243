package transfer

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	nt "jobsheet/entity"
)

// WriteJSON exports rows as an indented array of objects keyed by field name.
func WriteJSON(w io.Writer, rows []nt.Row) (err error) {

	if rows == nil {
		rows = []nt.Row{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err = encoder.Encode(rows)
	err = errors.Wrapf(err, "failed to encode rows")
	return
}

// ReadJSON imports an array of row objects as written by WriteJSON.
func ReadJSON(r io.Reader) (result Result, err error) {

	err = json.NewDecoder(r).Decode(&result.Rows)
	err = errors.Wrapf(err, "failed to decode rows")
	return
}
