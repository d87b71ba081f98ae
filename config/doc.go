// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml (or config.toml) and validated using
// struct tags. Defaults are applied after validation.
package config
