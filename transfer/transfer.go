// Package transfer moves rows in and out of CSV, JSON and XLSX.
package transfer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "jobsheet/entity"
)

// Format is a file format known by extension.
type Format string

const (
	CSV     Format = "csv"
	JSON    Format = "json"
	XLSX    Format = "xlsx"
	Parquet Format = "parquet"
)

// Result is the outcome of an import: rows to append and the lines skipped.
type Result struct {
	Rows     []nt.Row
	Problems []ParseError
}

// FormatFor picks a format from path's extension.
func FormatFor(path string) (format Format, err error) {

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case CSV, JSON, XLSX, Parquet:
		format = Format(ext)
	default:
		err = errors.Errorf("unknown format for %q", path)
	}
	return
}

// Read imports rows from r.
func Read(format Format, r io.Reader) (result Result, err error) {

	switch format {
	case CSV:
		return ReadCSV(r)
	case JSON:
		return ReadJSON(r)
	case XLSX:
		return ReadXLSX(r)
	}

	err = errors.Errorf("cannot import %s", format)
	return
}

// Write exports rows to w.
func Write(format Format, w io.Writer, rows []nt.Row) (err error) {

	switch format {
	case CSV:
		return WriteCSV(w, rows)
	case JSON:
		return WriteJSON(w, rows)
	case XLSX:
		return WriteXLSX(w, rows)
	}

	return errors.Errorf("cannot export %s here", format)
}

// ReadFile imports rows from the file at path.
func ReadFile(path string) (result Result, err error) {

	if strings.TrimSpace(path) == "" {
		err = ErrNoFileSelected
		return
	}

	format, err := FormatFor(path)
	if err != nil {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", path)
		return
	}
	defer file.Close()

	result, err = Read(format, file)
	err = errors.Wrapf(err, "failed to import %s", path)
	return
}

// WriteFile exports rows to the file at path, replacing it.
func WriteFile(path string, rows []nt.Row) (err error) {

	if strings.TrimSpace(path) == "" {
		return ErrNoFileSelected
	}

	format, err := FormatFor(path)
	if err != nil {
		return
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	err = Write(format, file, rows)
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to export %s", path)
	}

	err = file.Close()
	err = errors.Wrapf(err, "failed to close %s", path)
	return
}

// unexported

// matcher maps header positions onto column indexes.
type matcher struct {
	cols []int // Column index per header position, -1 when unmatched
}

func newMatcher(header []string) (mtc matcher, err error) {

	mtc.cols = make([]int, len(header))
	found := false
	for i, label := range header {
		mtc.cols[i] = nt.LabelIndex(label)
		if mtc.cols[i] >= 0 {
			found = true
		}
	}

	if !found {
		err = ErrNoColumns
	}
	return
}

func (mtc matcher) row(values []string) (row nt.Row) {

	for i, col := range mtc.cols {
		if col < 0 || i >= len(values) {
			continue
		}
		row = row.Set(nt.Columns[col].Key, values[i])
	}
	return
}

func blank(values []string) bool {
	for _, val := range values {
		if strings.TrimSpace(val) != "" {
			return false
		}
	}
	return true
}
