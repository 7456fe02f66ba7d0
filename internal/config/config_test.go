package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/issueboard/internal/models"
)

// writeConfig writes content to a config.yaml in a temp dir
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, models.DefaultColumns(), cfg.Columns())
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, 1000.0, cfg.Ordering.Base)
	assert.Equal(t, 1000.0, cfg.Ordering.Gap)
	assert.Equal(t, 1e-6, cfg.Ordering.MinGap)
	assert.Equal(t, 1e-3, cfg.Ordering.Epsilon)
	assert.Equal(t, "reject", cfg.Moves.PendingPolicy)
	assert.Equal(t, 10*time.Second, cfg.Moves.PersistTimeout)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "issueboard")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configContent := `lanes: [Todo, Doing, Done]
backend: api
api:
  url: http://localhost:8081/api
  key: secret
ordering:
  gap: 100
moves:
  pending_policy: supersede
  persist_timeout: 3s
theme:
  preset: monochrome
  accent: "#123456"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []models.Column{"Todo", "Doing", "Done"}, cfg.Columns())
	assert.Equal(t, BackendAPI, cfg.Backend)
	assert.Equal(t, "http://localhost:8081/api", cfg.API.URL)
	assert.Equal(t, "secret", cfg.API.Key)
	assert.Equal(t, 100.0, cfg.Ordering.Gap)
	assert.Equal(t, 1000.0, cfg.Ordering.Base, "unset fields keep defaults")
	assert.Equal(t, "supersede", cfg.Moves.PendingPolicy)
	assert.Equal(t, 3*time.Second, cfg.Moves.PersistTimeout)
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, "#808080", cfg.ColorScheme.Subtle, "missing colors come from the preset")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "backend: sqlite\ndatabase:\n  path: /tmp/from-file.db\n")
	t.Setenv("ISSUEBOARD_DB_PATH", "/tmp/from-env.db")
	t.Setenv("ISSUEBOARD_LANES", "A,B")
	t.Setenv("ISSUEBOARD_MIN_GAP", "0.01")
	t.Setenv("ISSUEBOARD_PERSIST_TIMEOUT", "250ms")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.Database.Path)
	assert.Equal(t, []models.Column{"A", "B"}, cfg.Columns())
	assert.Equal(t, 0.01, cfg.Ordering.MinGap)
	assert.Equal(t, 250*time.Millisecond, cfg.Moves.PersistTimeout)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, "ordering:\n  base: 10\n")
	t.Setenv("ISSUEBOARD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Ordering.Base)

	alloc := cfg.Allocator()
	assert.Equal(t, 10.0, alloc.Allocate(nil, nil))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "lanes: [unterminated\n")

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Backend = "redis" }},
		{"api without url", func(c *Config) { c.Backend = BackendAPI }},
		{"duplicate lane", func(c *Config) { c.Lanes = []string{"Todo", "todo"} }},
		{"empty lane", func(c *Config) { c.Lanes = []string{"Todo", " "} }},
		{"negative gap", func(c *Config) { c.Ordering.Gap = -1 }},
		{"min gap above gap", func(c *Config) { c.Ordering.MinGap = 5000 }},
		{"negative epsilon", func(c *Config) { c.Ordering.Epsilon = -0.1 }},
		{"unknown policy", func(c *Config) { c.Moves.PendingPolicy = "queue" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Backend = BackendAPI
	cfg.API.URL = "http://example.test/api"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
