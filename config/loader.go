package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	_ "time/tzdata" // timezone validation without a system zoneinfo

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// DefaultPaths are searched in order by LoadAppConfig
var DefaultPaths = []string{"config.yml", "config.yaml", "config.toml"}

// LoadAppConfig loads and validates the application configuration from the first default path found
func LoadAppConfig() error {
	var lastErr error
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err != nil {
			lastErr = err
			continue
		}
		cfg, err := LoadFromFile(p)
		if err != nil {
			return err
		}
		Config = *cfg
		return nil
	}
	if lastErr == nil {
		lastErr = errors.New("no config path configured")
	}
	return fmt.Errorf("config not found: %w", lastErr)
}

// LoadFromFile reads, validates and defaults a config file. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadFromFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Validate checks struct tags on the whole configuration
func Validate(cfg *AppConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.RedisAddr == "" {
		return errors.New("cache.redisAddr is required for the redis backend")
	}
	return nil
}

// ApplyDefaults fills zero values with defaults
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Data.StationIDField == "" {
		cfg.Data.StationIDField = DefaultStationIDField
	}
	if cfg.Data.Timezone == "" {
		cfg.Data.Timezone = DefaultTimezone
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = DefaultCacheBackend
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = DefaultCacheSize
	}
	if cfg.Cache.TTLSeconds == nil {
		ttl := DefaultCacheTTLSeconds
		cfg.Cache.TTLSeconds = &ttl
	}
	if cfg.Cache.RedisPrefix == "" {
		cfg.Cache.RedisPrefix = DefaultRedisPrefix
	}
	if cfg.Scale.MaxRadius == 0 {
		cfg.Scale.MaxRadius = DefaultMaxRadius
	}
	if cfg.Scale.FilteredMinRadius == 0 && cfg.Scale.FilteredMaxRadius == 0 {
		cfg.Scale.FilteredMinRadius = DefaultFilteredMinRadius
		cfg.Scale.FilteredMaxRadius = DefaultFilteredMaxRadius
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
