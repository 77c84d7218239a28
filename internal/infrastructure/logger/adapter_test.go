package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerAdapter_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()

	l, err := NewLoggerAdapter(Config{Level: "debug", Dir: dir, RunName: "create serp/task"})
	require.NoError(t, err)

	l.WithFields(map[string]any{"run_id": "r1"}).WithField("item", 2).Info("Item succeeded", "records", 3)
	require.NoError(t, l.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_create_serp_task.log"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "Item succeeded", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "r1", entry["run_id"])
	assert.Equal(t, float64(2), entry["item"])
	assert.Equal(t, float64(3), entry["records"])
}

func TestNewLoggerAdapter_RespectsLevel(t *testing.T) {
	dir := t.TempDir()

	l, err := NewLoggerAdapter(Config{Level: "warn", Dir: dir})
	require.NoError(t, err)
	l.Info("dropped")
	l.Warn("kept")
	require.NoError(t, l.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("ignored", "key", "value")
	assert.NoError(t, l.WithField("a", 1).Close())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "getTaskStatus", sanitize("getTaskStatus"))
	assert.Equal(t, "a_b", sanitize("/a b/"))
	assert.Equal(t, "run", sanitize(""))
	assert.Len(t, sanitize(strings.Repeat("x", 100)), 60)
}
