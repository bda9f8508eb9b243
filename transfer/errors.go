package transfer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoFileSelected is returned for an empty path; callers treat it as a no-op.
	ErrNoFileSelected = errors.New("no file selected")
	// ErrFieldCount marks a line whose field count differs from the header's.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrNoColumns marks a header naming none of the known columns.
	ErrNoColumns = errors.New("no known columns in header")
)

// ParseError reports a line that was skipped during import.
type ParseError struct {
	Line int
	Err  error
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", pe.Line, pe.Err)
}

func (pe ParseError) Unwrap() error {
	return pe.Err
}
