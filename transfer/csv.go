package transfer

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	nt "jobsheet/entity"
)

// ReadCSV imports rows from RFC 4180 text whose first line names the columns.
// Headers match column labels ignoring case; unknown headers are dropped.
// Lines with the wrong field count, or bad quoting, are skipped and reported.
func ReadCSV(r io.Reader) (result Result, err error) {

	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1
	rdr.TrimLeadingSpace = true

	header, err := rdr.Read()
	if err == io.EOF {
		err = nil
		return
	}
	if err != nil {
		pe, ok := parseError(err)
		if !ok {
			err = errors.Wrapf(err, "failed to read header")
			return
		}
		result.Problems = append(result.Problems, pe)
		err = nil
		return
	}

	mtc, err := newMatcher(header)
	if err != nil {
		result.Problems = append(result.Problems, ParseError{Line: 1, Err: err})
		err = nil
		return
	}

	for {
		var record []string
		record, err = rdr.Read()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			pe, ok := parseError(err)
			if !ok {
				err = errors.Wrapf(err, "failed to read csv")
				return
			}
			result.Problems = append(result.Problems, pe)
			continue
		}

		if blank(record) {
			continue
		}

		line, _ := rdr.FieldPos(0)
		if len(record) != len(header) {
			result.Problems = append(result.Problems, ParseError{
				Line: line,
				Err:  errors.Wrapf(ErrFieldCount, "got %d, header has %d", len(record), len(header)),
			})
			continue
		}

		result.Rows = append(result.Rows, mtc.row(record))
	}

	return
}

// WriteCSV exports a header of column labels and one line per row.
// Fields are quoted only when they hold a comma, quote or line break.
func WriteCSV(w io.Writer, rows []nt.Row) (err error) {

	wtr := csv.NewWriter(w)

	err = wtr.Write(nt.Labels())
	if err != nil {
		return errors.Wrapf(err, "failed to write header")
	}

	for _, row := range rows {
		err = wtr.Write(row.Values())
		if err != nil {
			return errors.Wrapf(err, "failed to write row")
		}
	}

	wtr.Flush()
	err = wtr.Error()
	err = errors.Wrapf(err, "failed to flush csv")
	return
}

// unexported

func parseError(err error) (pe ParseError, ok bool) {

	var csvErr *csv.ParseError
	if !errors.As(err, &csvErr) {
		return
	}

	return ParseError{Line: csvErr.StartLine, Err: csvErr.Err}, true
}
