package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

const minimalYAML = `
data:
  stationsURL: stations.json
  tripsURL: trips.csv
`

// TestConfig_LoadFromRepoRoot loads the config.yml shipped with the repository
func TestConfig_LoadFromRepoRoot(t *testing.T) {
	origConfig := Config
	defer func() { Config = origConfig }()
	chdir(t, "..")

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, 16182, Config.Server.Port)
	assert.Equal(t, "short_name", Config.Data.StationIDField)
	assert.NotEmpty(t, Config.Data.TripsURL)
}

func TestConfig_MissingFile(t *testing.T) {
	origConfig := Config
	defer func() { Config = origConfig }()
	chdir(t, t.TempDir())

	err := LoadAppConfig()
	assert.Error(t, err)
}

func TestConfig_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "invalid: yaml: content: [[[")
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestConfig_EmptyFileFailsValidation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "")
	_, err := LoadFromFile(path)
	assert.Error(t, err, "data.stationsURL and data.tripsURL are required")
}

func TestConfig_Defaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", minimalYAML)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultStationIDField, cfg.Data.StationIDField)
	assert.Equal(t, DefaultTimezone, cfg.Data.Timezone)
	assert.Equal(t, DefaultCacheBackend, cfg.Cache.Backend)
	assert.Equal(t, DefaultCacheSize, cfg.Cache.Size)
	require.NotNil(t, cfg.Cache.TTLSeconds)
	assert.Equal(t, DefaultCacheTTLSeconds, *cfg.Cache.TTLSeconds)
	assert.Equal(t, DefaultCacheTTLSeconds*time.Second, cfg.Cache.TTL())
	assert.Equal(t, float64(DefaultMaxRadius), cfg.Scale.MaxRadius)
	assert.Equal(t, float64(DefaultFilteredMinRadius), cfg.Scale.FilteredMinRadius)
	assert.Equal(t, float64(DefaultFilteredMaxRadius), cfg.Scale.FilteredMaxRadius)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestConfig_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
logLevel = "debug"

[server]
port = 9000

[data]
stationsURL = "stations.json"
tripsURL = "trips.csv"
stationIDField = "Number"

[cache]
backend = "redis"
redisAddr = "127.0.0.1:6379"
ttlSeconds = 0
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "Number", cfg.Data.StationIDField)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, time.Duration(0), cfg.Cache.TTL())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_CacheTTL(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want time.Duration
	}{
		{"unset uses default", minimalYAML, DefaultCacheTTLSeconds * time.Second},
		{"zero disables expiry", minimalYAML + "cache:\n  ttlSeconds: 0\n", 0},
		{"explicit value", minimalYAML + "cache:\n  ttlSeconds: 45\n", 45 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yml", tt.yaml)
			cfg, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Cache.TTL())
		})
	}
}

func TestConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown id field", minimalYAML + "  stationIDField: internal_id\n"},
		{"bad timezone", minimalYAML + "  timezone: Mars/Olympus\n"},
		{"bad backend", minimalYAML + "cache:\n  backend: memcached\n"},
		{"redis without address", minimalYAML + "cache:\n  backend: redis\n"},
		{"negative ttl", minimalYAML + "cache:\n  ttlSeconds: -5\n"},
		{"inverted radius range", minimalYAML + "scale:\n  filteredMinRadius: 10\n  filteredMaxRadius: 5\n"},
		{"port out of range", minimalYAML + "server:\n  port: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yml", tt.yaml)
			_, err := LoadFromFile(path)
			assert.Error(t, err)
		})
	}
}
