package jobsheet

import (
	"context"
	"strings"

	nt "jobsheet/entity"
	"jobsheet/store/duck"
	"jobsheet/transfer"
)

// ReadRows imports rows from path, going through duckdb for parquet.
func ReadRows(ctx context.Context, lgr nt.Logger, path string) (result transfer.Result, err error) {

	parquet, err := isParquet(path)
	if err != nil {
		return
	}
	if !parquet {
		return transfer.ReadFile(path)
	}

	dk, err := duck.New(lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	result.Rows, err = dk.ImportParquet(ctx, path)
	return
}

// WriteRows exports rows to path, going through duckdb for parquet.
func WriteRows(ctx context.Context, lgr nt.Logger, path string, rows []nt.Row) (err error) {

	parquet, err := isParquet(path)
	if err != nil {
		return
	}
	if !parquet {
		return transfer.WriteFile(path, rows)
	}

	dk, err := duck.New(lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	return dk.ExportParquet(ctx, path, rows)
}

// unexported

func isParquet(path string) (ok bool, err error) {

	if strings.TrimSpace(path) == "" {
		err = transfer.ErrNoFileSelected
		return
	}

	format, err := transfer.FormatFor(path)
	ok = format == transfer.Parquet
	return
}
