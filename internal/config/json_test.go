package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_path":      "/data/portal.db",
		"session_cache_path": "/data/session.json",
		"log_level":          "debug",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/data/portal.db", cfg.DatabasePath)
		assert.Equal(t, "/data/session.json", cfg.SessionCachePath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabasePath: "default.db", LogLevel: "info"}
		parseJson(cfg)

		assert.Equal(t, "default.db", cfg.DatabasePath)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("partial file overrides only named fields", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"log_level": "warn",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{DatabasePath: "default.db", LogLevel: "info"}
		parseJson(cfg)

		assert.Equal(t, "default.db", cfg.DatabasePath)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
