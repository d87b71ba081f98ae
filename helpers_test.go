package biketraffic

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/cache"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/loader"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg, err := config.LoadFromFile("testdata/config.yml")
	require.NoError(t, err)
	cfg.Data.StationsURL = "testdata/" + cfg.Data.StationsURL
	cfg.Data.TripsURL = "testdata/" + cfg.Data.TripsURL
	return *cfg
}

// newTestService loads the fixture dataset with a memory cache and a fixed clock
func newTestService(t *testing.T) (*Service, *cache.Memory) {
	t.Helper()
	cfg := testConfig(t)
	ds, err := loader.Load(context.Background(), cfg.Data)
	require.NoError(t, err)
	mem := cache.NewMemory(cfg.Cache.Size, 0)
	svc := NewService(ds, mem, cfg)
	svc.now = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }
	return svc, mem
}
