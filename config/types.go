package config

import "time"

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" toml:"port" validate:"gte=0,lte=65535"`
}

// DataConfig describes where station and trip datasets come from
type DataConfig struct {
	StationsURL    string `yaml:"stationsURL" toml:"stationsURL" validate:"required"`
	TripsURL       string `yaml:"tripsURL" toml:"tripsURL" validate:"required"`
	StationIDField string `yaml:"stationIDField" toml:"stationIDField" validate:"omitempty,oneof=short_name Number station_id"`
	Timezone       string `yaml:"timezone" toml:"timezone" validate:"omitempty,timezone"`
	CachePath      string `yaml:"cachePath" toml:"cachePath"`
}

// CacheConfig selects the response cache backend.
// An unset TTLSeconds means DefaultCacheTTLSeconds; an explicit 0 disables expiry.
type CacheConfig struct {
	Backend     string `yaml:"backend" toml:"backend" validate:"omitempty,oneof=memory redis none"`
	Size        int    `yaml:"size" toml:"size" validate:"gte=0"`
	TTLSeconds  *int   `yaml:"ttlSeconds" toml:"ttlSeconds" validate:"omitempty,gte=0"`
	RedisAddr   string `yaml:"redisAddr" toml:"redisAddr" validate:"omitempty,hostname_port"`
	RedisPrefix string `yaml:"redisPrefix" toml:"redisPrefix"`
}

// TTL returns the entry lifetime; 0 means entries never expire
func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds == nil {
		return DefaultCacheTTLSeconds * time.Second
	}
	return time.Duration(*c.TTLSeconds) * time.Second
}

// ScaleConfig contains marker radius ranges in pixels
type ScaleConfig struct {
	MaxRadius         float64 `yaml:"maxRadius" toml:"maxRadius" validate:"gte=0"`
	FilteredMinRadius float64 `yaml:"filteredMinRadius" toml:"filteredMinRadius" validate:"gte=0"`
	FilteredMaxRadius float64 `yaml:"filteredMaxRadius" toml:"filteredMaxRadius" validate:"gte=0,gtefield=FilteredMinRadius"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig `yaml:"server" toml:"server"`
	Data     DataConfig   `yaml:"data" toml:"data"`
	Cache    CacheConfig  `yaml:"cache" toml:"cache"`
	Scale    ScaleConfig  `yaml:"scale" toml:"scale"`
	LogLevel string       `yaml:"logLevel" toml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}

const (
	DefaultPort              = 16182
	DefaultStationIDField    = "short_name"
	DefaultTimezone          = "America/New_York"
	DefaultCacheBackend      = "memory"
	DefaultCacheSize         = 256
	DefaultCacheTTLSeconds   = 300
	DefaultRedisPrefix       = "bikeshare-traffic:"
	DefaultMaxRadius         = 25
	DefaultFilteredMinRadius = 3
	DefaultFilteredMaxRadius = 50
	DefaultLogLevel          = "info"
)
