package duck

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "jobsheet/entity"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func rows() []nt.Row {
	return []nt.Row{
		{JobRequest: "Launch", Status: "In-process", Priority: "Medium", Extract: "6,200,000"},
		{JobRequest: "Press kit", Status: "Need to start", Priority: "High"},
		{JobRequest: "Testing", Status: "In-process", Priority: "Medium"},
	}
}

func newDuck(t *testing.T) *Duck {
	dk, err := New(nopLogger{})
	require.NoError(t, err)
	t.Cleanup(dk.Close)
	return dk
}

func TestParquetRoundTrip(t *testing.T) {
	ctx := context.Background()
	dk := newDuck(t)
	path := filepath.Join(t.TempDir(), "it's.parquet")

	err := dk.ExportParquet(ctx, path, rows())
	require.NoError(t, err)

	got, err := dk.ImportParquet(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, rows(), got)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	dk := newDuck(t)
	require.NoError(t, dk.Load(ctx, rows()))

	counts, err := dk.Counts(ctx, nt.Status)
	require.NoError(t, err)

	assert.Equal(t, []Count{
		{Value: "In-process", Count: 2},
		{Value: "Need to start", Count: 1},
	}, counts)
}

func TestLoadReplaces(t *testing.T) {
	ctx := context.Background()
	dk := newDuck(t)
	require.NoError(t, dk.Load(ctx, rows()))
	require.NoError(t, dk.Load(ctx, rows()[:1]))

	counts, err := dk.Counts(ctx, nt.Priority)
	require.NoError(t, err)

	assert.Equal(t, []Count{{Value: "Medium", Count: 1}}, counts)
}

func TestCountsUnknownColumn(t *testing.T) {
	_, err := newDuck(t).Counts(context.Background(), nt.Key("bogus"))

	assert.Error(t, err)
}
