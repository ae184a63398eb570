package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, BackendFile, c.StoreBackend)
	assert.Equal(t, "vault.json", c.StorePath)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, "mediavault:", c.RedisPrefix)
	assert.Equal(t, int64(5*1024*1024), c.MaxFileSize)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, "vault.json", cfg.StorePath)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-b", "sqlite", "-s", "media.db", "-r", "10.0.0.1:6379"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "media.db", cfg.StorePath)
	assert.Equal(t, "10.0.0.1:6379", cfg.RedisAddr)
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("json overlays only the fields it sets", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"store_backend":"redis","max_file_size":1024}`), 0o600))
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, BackendRedis, cfg.StoreBackend)
		assert.Equal(t, int64(1024), cfg.MaxFileSize)
		// Untouched fields keep their defaults.
		assert.Equal(t, "vault.json", cfg.StorePath)
		assert.Equal(t, "mediavault:", cfg.RedisPrefix)
	})

	t.Run("no -c flag means no json is loaded", func(t *testing.T) {
		os.Args = []string{"cmd"}
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)
		assert.Equal(t, BackendFile, cfg.StoreBackend)
	})

	t.Run("malformed json panics", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf.json")
		require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("flags override json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"store_path":"from-json.db"}`), 0o600))
		os.Args = []string{"cmd", "-c", path, "-s", "from-flag.db"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)
		parseFlags(cfg)

		assert.Equal(t, "from-flag.db", cfg.StorePath)
	})
}
