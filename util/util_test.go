package util

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestSampleThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	err := SampleConfig(testConfig{Name: "jobs", Count: 3}, path, 0644)
	require.NoError(t, err)

	var cfg testConfig
	require.NoError(t, LoadConfig(&cfg, path))
	assert.Equal(t, testConfig{Name: "jobs", Count: 3}, cfg)
}

func TestSampleKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: mine\n"), 0644))

	require.NoError(t, SampleConfig(testConfig{Name: "sample"}, path, 0644))

	var cfg testConfig
	require.NoError(t, LoadConfig(&cfg, path))
	assert.Equal(t, "mine", cfg.Name)
}

func TestLoadMissing(t *testing.T) {
	var cfg testConfig

	err := LoadConfig(&cfg, filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorContains(t, err, "failed to read")
}

func TestOpenLog(t *testing.T) {
	assert.Equal(t, io.Discard, OpenLog("", 0644))
	assert.Equal(t, io.Discard, OpenLog(filepath.Join(t.TempDir(), "no", "such", "dir.log"), 0644))

	path := filepath.Join(t.TempDir(), "run.log")
	file := OpenLog(path, 0644)
	_, err := file.Write([]byte("hello\n"))
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
