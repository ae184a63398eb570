// Package config loads runtime configuration for the media vault CLI.
//
// Sources & precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via the -c or -config flags.
//  3. Command-line flags, which override earlier values.
package config

// Backend names accepted for Config.StoreBackend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime settings for the vault CLI.
type Config struct {
	// StoreBackend selects the key-value store implementation:
	// file, sqlite, redis, or memory.
	StoreBackend string

	// StorePath is the store file for the file backend or the database
	// file for the sqlite backend.
	StorePath string

	// RedisAddr and RedisPrefix configure the redis backend.
	RedisAddr   string
	RedisPrefix string

	// MaxFileSize is the per-file upload limit in bytes.
	MaxFileSize int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreBackend = BackendFile
	c.StorePath = "vault.json"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = "mediavault:"
	c.MaxFileSize = 5 * 1024 * 1024
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
