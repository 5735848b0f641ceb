package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config holds CLI settings read from the TOML config file.
type Config struct {
	Cache CacheConfig `toml:"cache"`
	Walk  WalkConfig  `toml:"walk"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	// Backend is one of "file" (default), "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`

	// TTLMinutes bounds how long cached results live. Zero means forever.
	TTLMinutes int `toml:"ttl_minutes"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// WalkConfig sets defaults for the walk command's flags.
type WalkConfig struct {
	MaxLength int `toml:"max_length"`
	Attempts  int `toml:"attempts"`
	MinLength int `toml:"min_length"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Backend:    backendFile,
			TTLMinutes: 0,
			RedisAddr:  "localhost:6379",
		},
		Walk: WalkConfig{
			MaxLength: 5,
			Attempts:  100,
			MinLength: 2,
		},
	}
}

// ConfigPath returns the default config file location
// (~/.config/ironweaver/config.toml or the platform equivalent).
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// LoadConfig reads the config file at path, layering it over the defaults.
// A missing file is not an error: the defaults are returned as is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// MustLoadConfig loads the config from the default location, falling back to
// defaults on any error. Config problems should never keep the CLI from
// starting; commands that care can re-validate.
func MustLoadConfig() Config {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
