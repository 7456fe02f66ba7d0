package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithOptions_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitWithOptions(Options{Dir: dir, Level: slog.LevelInfo})
	require.NoError(t, err)

	slog.Debug("hidden message")
	slog.Info("move committed", "issue_id", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "issueboard.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "move committed")
	assert.Contains(t, string(data), "issue_id=7")
	assert.NotContains(t, string(data), "hidden message")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
