package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-d", "/tmp/x.db", "-l", "error"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("keeps defaults without flags", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "recoverpeer.db", cfg.DatabasePath)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}
