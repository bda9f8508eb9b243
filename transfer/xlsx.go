package transfer

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	nt "jobsheet/entity"
)

const sheetName = "Jobs"

// WriteXLSX exports rows to a workbook with a single sheet, labels in row 1.
func WriteXLSX(w io.Writer, rows []nt.Row) (err error) {

	book := excelize.NewFile()
	defer book.Close()

	err = book.SetSheetName("Sheet1", sheetName)
	if err != nil {
		return errors.Wrapf(err, "failed to name sheet")
	}

	labels := nt.Labels()
	err = book.SetSheetRow(sheetName, "A1", &labels)
	if err != nil {
		return errors.Wrapf(err, "failed to write header")
	}

	bold, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrapf(err, "failed to create header style")
	}
	err = book.SetRowStyle(sheetName, 1, 1, bold)
	if err != nil {
		return errors.Wrapf(err, "failed to style header")
	}

	for i, row := range rows {
		var cell string
		cell, err = excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrapf(err, "failed to address row %d", i)
		}

		values := row.Values()
		err = book.SetSheetRow(sheetName, cell, &values)
		if err != nil {
			return errors.Wrapf(err, "failed to write row %d", i)
		}
	}

	err = book.Write(w)
	err = errors.Wrapf(err, "failed to write workbook")
	return
}

// ReadXLSX imports rows from the first sheet of a workbook, header in row 1.
// Matching follows ReadCSV; trailing empty cells may be omitted.
func ReadXLSX(r io.Reader) (result Result, err error) {

	book, err := excelize.OpenReader(r)
	if err != nil {
		err = errors.Wrapf(err, "failed to open workbook")
		return
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return
	}

	records, err := book.GetRows(sheets[0])
	if err != nil {
		err = errors.Wrapf(err, "failed to read sheet %s", sheets[0])
		return
	}
	if len(records) == 0 {
		return
	}

	header := records[0]
	mtc, err := newMatcher(header)
	if err != nil {
		result.Problems = append(result.Problems, ParseError{Line: 1, Err: err})
		err = nil
		return
	}

	for i, record := range records[1:] {
		if blank(record) {
			continue
		}

		if len(record) > len(header) {
			result.Problems = append(result.Problems, ParseError{
				Line: i + 2,
				Err:  errors.Wrapf(ErrFieldCount, "got %d, header has %d", len(record), len(header)),
			})
			continue
		}

		result.Rows = append(result.Rows, mtc.row(record))
	}

	return
}
