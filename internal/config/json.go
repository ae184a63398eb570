package config

import (
	"encoding/json"
	"os"

	"github.com/mvkeep/mediavault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// mean "not set" and leave the corresponding Config field untouched.
type JsonConfig struct {
	StoreBackend string `json:"store_backend"`
	StorePath    string `json:"store_path"`
	RedisAddr    string `json:"redis_addr"`
	RedisPrefix  string `json:"redis_prefix"`
	MaxFileSize  int64  `json:"max_file_size"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. No flag means no JSON is loaded. Read or unmarshal
// errors panic; the config is unusable without it once requested.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreBackend != "" {
		cfg.StoreBackend = jc.StoreBackend
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.RedisPrefix != "" {
		cfg.RedisPrefix = jc.RedisPrefix
	}
	if jc.MaxFileSize > 0 {
		cfg.MaxFileSize = jc.MaxFileSize
	}
}
