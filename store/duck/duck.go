package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "jobsheet/entity"
)

const table = "jobs"

// Duck is an in-memory duckdb holding a snapshot of the grid's rows.
// It is used for Parquet import/export and for summary counts.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
}

// Count is the number of rows sharing a value.
type Count struct {
	Value string
	Count int
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load replaces the snapshot with rows.
func (dk *Duck) Load(ctx context.Context, rows []nt.Row) (err error) {

	_, err = dk.db.ExecContext(ctx, createTable())
	if err != nil {
		return errors.Wrapf(err, "failed to create table")
	}

	tx, err := dk.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin insert")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertRow())
	if err != nil {
		return errors.Wrapf(err, "failed to prepare insert")
	}
	defer stmt.Close()

	for i, row := range rows {
		_, err = stmt.ExecContext(ctx, args(row)...)
		if err != nil {
			return errors.Wrapf(err, "failed to insert row %d", i)
		}
	}

	err = tx.Commit()
	if err != nil {
		return errors.Wrapf(err, "failed to commit insert")
	}

	dk.logger.Info(ctx, "loaded rows", "count", len(rows))
	return
}

// ExportParquet loads rows and writes them to a parquet file at path.
func (dk *Duck) ExportParquet(ctx context.Context, path string, rows []nt.Row) (err error) {

	err = dk.Load(ctx, rows)
	if err != nil {
		return
	}

	_, err = dk.db.ExecContext(ctx, fmt.Sprintf("COPY %s TO '%s' (FORMAT PARQUET)", table, quote(path)))
	if err != nil {
		return errors.Wrapf(err, "failed to copy to %s", path)
	}

	dk.logger.Info(ctx, "exported parquet", "path", path, "count", len(rows))
	return
}

// ImportParquet reads rows from a parquet file written by ExportParquet.
// Columns are matched by key; missing ones are left empty.
func (dk *Duck) ImportParquet(ctx context.Context, path string) (rows []nt.Row, err error) {

	query := fmt.Sprintf("SELECT * FROM read_parquet('%s')", quote(path))
	result, err := dk.db.QueryContext(ctx, query)
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", path)
		return
	}
	defer result.Close()

	names, err := result.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from %s", path)
		return
	}

	for result.Next() {
		vals := make([]sql.NullString, len(names))
		ptrs := make([]any, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}

		err = result.Scan(ptrs...)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		var row nt.Row
		for i, name := range names {
			row = row.Set(nt.Key(name), vals[i].String)
		}
		rows = append(rows, row)
	}

	err = result.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Counts returns how many loaded rows hold each value of key, by value.
func (dk *Duck) Counts(ctx context.Context, key nt.Key) (counts []Count, err error) {

	if nt.ColumnIndex(key) < 0 {
		err = errors.Errorf("unknown column %q", key)
		return
	}

	query := fmt.Sprintf(`SELECT "%s", COUNT(*) FROM %s GROUP BY 1 ORDER BY 1`, key, table)
	result, err := dk.db.QueryContext(ctx, query)
	if err != nil {
		err = errors.Wrapf(err, "failed to count by %s", key)
		return
	}
	defer result.Close()

	for result.Next() {
		var count Count
		err = result.Scan(&count.Value, &count.Count)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan count")
			return
		}
		counts = append(counts, count)
	}

	err = result.Err()
	err = errors.Wrapf(err, "error iterating counts")
	return
}

// unexported

func createTable() string {

	cols := make([]string, len(nt.Columns))
	for i, col := range nt.Columns {
		cols[i] = fmt.Sprintf(`"%s" VARCHAR NOT NULL`, col.Key)
	}
	return fmt.Sprintf("CREATE OR REPLACE TABLE %s (%s)", table, strings.Join(cols, ", "))
}

func insertRow() string {

	marks := strings.TrimSuffix(strings.Repeat("?, ", len(nt.Columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, marks)
}

func args(row nt.Row) []any {

	values := row.Values()
	out := make([]any, len(values))
	for i, val := range values {
		out[i] = val
	}
	return out
}

func quote(path string) string {
	return strings.ReplaceAll(path, "'", "''")
}
