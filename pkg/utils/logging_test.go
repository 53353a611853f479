package utils

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/goccy/go-json"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"
)

func TestLoggerTeesToFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "logs", "frontend.log")
    l := Logger(path, false)
    l.Info("csv batch finished", zap.Int("rows", 3))
    l.Debug("dropped below info")
    _ = l.Sync()

    raw, err := os.ReadFile(path)
    require.NoError(t, err)

    var entry map[string]any
    require.NoError(t, json.Unmarshal(raw, &entry))
    assert.Equal(t, "csv batch finished", entry["msg"])
    assert.Equal(t, float64(3), entry["rows"])
    assert.Equal(t, "info", entry["level"])
}

func TestLoggerDebugLevel(t *testing.T) {
    l := Logger("", true)
    assert.True(t, l.Core().Enabled(zap.DebugLevel))
    assert.False(t, Logger("", false).Core().Enabled(zap.DebugLevel))
}
