package transfer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "jobsheet/entity"
)

func sampleRows() []nt.Row {
	return []nt.Row{
		{
			JobRequest: "Launch social media campaign for product X",
			Submitted:  "15-11-2024",
			Status:     "In-process",
			Submitter:  "Aisha Patel",
			URL:        "www.aishapatel.com",
			Assigned:   "Sophie Choudhury",
			Priority:   "Medium",
			DueDate:    "20-11-2024",
			Extract:    "6200000",
		},
		{
			JobRequest: "Update press kit for company redesign",
			Submitted:  "28-10-2024",
			Status:     "Need to start",
			Submitter:  "Irfan Khan",
			Priority:   "High",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, sampleRows()[1:])
	require.NoError(t, err)

	want := "Job Request,Submitted,Status,Submitter,URL,Assigned,Priority,Due Date,Est. Value\n" +
		"Update press kit for company redesign,28-10-2024,Need to start,Irfan Khan,,,High,,\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	result, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Empty(t, result.Problems)
	assert.Equal(t, sampleRows(), result.Rows)
}

func TestCSVRoundTripEmbeddedComma(t *testing.T) {
	rows := []nt.Row{{JobRequest: `Plan "Q4", then ship`, Extract: "6,200,000"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	result, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Equal(t, rows, result.Rows)
}

func TestReadCSVHeaderMatching(t *testing.T) {
	in := "STATUS, job request ,Notes\n" +
		"Complete,Ship it,ignored\n" +
		"\n" +
		"Blocked,Wait,also ignored\n"

	result, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Empty(t, result.Problems)
	assert.Equal(t, []nt.Row{
		{Status: "Complete", JobRequest: "Ship it"},
		{Status: "Blocked", JobRequest: "Wait"},
	}, result.Rows)
}

func TestReadCSVSkipsMismatchedLines(t *testing.T) {
	in := "Job Request,Status\n" +
		"one,Complete\n" +
		"two,Complete,extra\n" +
		"three\n" +
		"four,Blocked\n"

	result, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, result.Problems, 2)
	assert.Equal(t, 3, result.Problems[0].Line)
	assert.Equal(t, 4, result.Problems[1].Line)
	assert.True(t, errors.Is(result.Problems[0], ErrFieldCount))

	assert.Equal(t, []nt.Row{
		{JobRequest: "one", Status: "Complete"},
		{JobRequest: "four", Status: "Blocked"},
	}, result.Rows)
}

func TestReadCSVBadQuote(t *testing.T) {
	in := "Job Request,Status\n" +
		"a \"quoted\" word,Complete\n" +
		"fine,Blocked\n"

	result, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, result.Problems, 1)
	assert.Equal(t, 2, result.Problems[0].Line)
	assert.Equal(t, []nt.Row{{JobRequest: "fine", Status: "Blocked"}}, result.Rows)
}

func TestReadCSVUnknownHeader(t *testing.T) {
	result, err := ReadCSV(strings.NewReader("Foo,Bar\n1,2\n"))
	require.NoError(t, err)

	assert.Empty(t, result.Rows)
	require.Len(t, result.Problems, 1)
	assert.True(t, errors.Is(result.Problems[0], ErrNoColumns))
}

func TestReadCSVEmpty(t *testing.T) {
	result, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, result.Rows)
	assert.Empty(t, result.Problems)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows()))

	var objects []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &objects))

	require.Len(t, objects, 2)
	assert.Len(t, objects[0], 9)
	assert.Equal(t, "Aisha Patel", objects[0]["submitter"])
	assert.Equal(t, "", objects[1]["dueDate"])
	assert.Contains(t, buf.String(), "\n  {\n    \"jobRequest\"")
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))

	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows()))

	result, err := ReadJSON(&buf)
	require.NoError(t, err)

	assert.Equal(t, sampleRows(), result.Rows)
}

func TestXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRows()))

	result, err := ReadXLSX(&buf)
	require.NoError(t, err)

	assert.Empty(t, result.Problems)
	assert.Equal(t, sampleRows(), result.Rows)
}

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{
		"data.csv":          CSV,
		"out/DATA.JSON":     JSON,
		"book.xlsx":         XLSX,
		"cols.parquet":      Parquet,
		"spreadsheet_data.": "",
	}

	for path, want := range cases {
		got, err := FormatFor(path)
		if want == "" {
			assert.Error(t, err, path)
			continue
		}
		assert.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"rows.csv", "rows.json", "rows.xlsx"} {
		path := filepath.Join(dir, name)

		require.NoError(t, WriteFile(path, sampleRows()), name)
		result, err := ReadFile(path)
		require.NoError(t, err, name)

		assert.Equal(t, sampleRows(), result.Rows, name)
	}
}

func TestNoFileSelected(t *testing.T) {
	_, err := ReadFile("  ")
	assert.Equal(t, ErrNoFileSelected, err)

	assert.Equal(t, ErrNoFileSelected, WriteFile("", sampleRows()))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))

	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParquetNotHandledHere(t *testing.T) {
	var buf bytes.Buffer

	assert.Error(t, Write(Parquet, &buf, sampleRows()))
	_, err := Read(Parquet, &buf)
	assert.Error(t, err)
}
