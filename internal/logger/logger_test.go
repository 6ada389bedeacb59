package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	log, err := New(Config{Level: "info", Encoding: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("analyze", zap.String("layout", "pax"), zap.Uint64("sum", 501000))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "analyze", entry["message"])
	require.Equal(t, "pax", entry["layout"])
	require.Contains(t, entry, "timestamp")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)

	_, err = New(Config{Level: "info", Encoding: "xml"})
	require.Error(t, err)
}

func TestNew_DefaultsToConsole(t *testing.T) {
	log, err := New(Config{Level: "warn"})
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.InfoLevel))
	require.True(t, log.Core().Enabled(zap.WarnLevel))
}
