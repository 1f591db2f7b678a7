package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when nothing is set", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("API_GATEWAY_URL", "")
		t.Setenv("TIENDA_STATE_DIR", "")
		t.Setenv("TIENDA_CACHE_DIR", "")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8000", cfg.APIGatewayURL)
		assert.Empty(t, cfg.StateDir)
		assert.Empty(t, cfg.CacheDir)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("API_GATEWAY_URL", "https://api.tienda.example")
		t.Setenv("TIENDA_STATE_DIR", "/var/lib/tienda")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "https://api.tienda.example", cfg.APIGatewayURL)
		assert.Equal(t, "/var/lib/tienda", cfg.StateDir)
	})

	t.Run("config file is merged below the environment", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("API_GATEWAY_URL", "")
		t.Setenv("TIENDA_STATE_DIR", "")
		t.Setenv("TIENDA_CACHE_DIR", "")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api_gateway_url: https://file.tienda.example\ncache_dir: /tmp/tienda-cache\n"), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://file.tienda.example", cfg.APIGatewayURL)
		assert.Equal(t, "/tmp/tienda-cache", cfg.CacheDir)
	})

	t.Run("explicit config file must exist", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing default config file is fine", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		_, err := Load("")
		assert.NoError(t, err)
	})
}
