package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/islandertools/islander/pkg/pipeline"
)

// Config holds settings loaded from the islander.toml config file. Flags
// override config values, which override built-in defaults.
type Config struct {
	// Engine is the default component engine.
	Engine string `toml:"engine"`

	// Addr is the default listen address for serve.
	Addr string `toml:"addr"`

	// CacheBackend is the default cache backend for serve.
	CacheBackend string `toml:"cache_backend"`

	Redis RedisSection `toml:"redis"`
	Mongo MongoSection `toml:"mongo"`
}

// RedisSection configures the redis cache backend.
type RedisSection struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoSection configures the mongo cache backend.
type MongoSection struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine:       pipeline.DefaultEngine,
		Addr:         ":8080",
		CacheBackend: "file",
		Redis:        RedisSection{Addr: "localhost:6379"},
		Mongo:        MongoSection{URI: "mongodb://localhost:27017"},
	}
}

// LoadConfig reads the first config file found, searching ./islander.toml
// then the XDG config directory. A missing file is not an error; defaults
// are returned.
func LoadConfig() (*Config, error) {
	for _, path := range configPaths() {
		cfg, err := loadConfigFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return DefaultConfig(), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func configPaths() []string {
	paths := []string{appName + ".toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, appName, "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}
