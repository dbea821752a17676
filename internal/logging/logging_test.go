package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "roster.log")

	logger, err := New(Options{Path: path})
	require.NoError(t, err)
	logger.Info("dataset loaded", zap.Int("records", 3))
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug entries are dropped at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.EqualValues(t, 3, entry["records"])
}

func TestFileLoggerVerboseKeepsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.log")

	logger, err := File(path, true)
	require.NoError(t, err)
	logger.Debug("recompute", zap.Uint64("gen", 7))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"gen":7`)
}

func TestConsoleLevel(t *testing.T) {
	logger, err := Console(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = Console(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNopDiscards(t *testing.T) {
	assert.False(t, Nop().Core().Enabled(zap.ErrorLevel))
}
