package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Forecast struct {
		SnapshotCacheTTLMinutes int `yaml:"snapshot_cache_ttl_minutes"`
	} `yaml:"forecast"`
}

// AppConfig holds the application-wide configuration.
// This is a simple way to make config accessible globally.
var AppConfig Config

// Load reads config from an optional YAML file, then applies environment
// variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Addr = ":3000"
	cfg.Forecast.SnapshotCacheTTLMinutes = 5

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SNAPSHOT_CACHE_TTL_MINUTES"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse SNAPSHOT_CACHE_TTL_MINUTES: %w", err)
		}
		cfg.Forecast.SnapshotCacheTTLMinutes = ttl
	}

	AppConfig = *cfg
	return cfg, nil
}
