package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	lib "github.com/theoremus-urban-solutions/bikeshare-traffic"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/cache"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/loader"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	format := flag.String("format", "json", "json|xml")
	configPath := flag.String("config", "", "config file (default: config.yml, config.yaml or config.toml)")
	minute := flag.Int("minute", traffic.UnfilteredSentinel, "minutes since midnight to center the window on; -1 for all trips")
	stations := flag.String("stations", "", "station JSON URL or path (overrides config)")
	trips := flag.String("trips", "", "trip CSV URL or path (overrides config)")
	idField := flag.String("idField", "", "station id field: short_name|Number|station_id (overrides config)")
	cachePath := flag.String("cache", "", "gob dataset cache path (overrides config)")
	flag.Parse()

	if err := loadConfig(*configPath); err != nil {
		// both sources on the command line are enough to run without a config file
		if *configPath != "" || *stations == "" || *trips == "" {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		config.Config = config.AppConfig{}
	}
	cfg := config.Config
	if *stations != "" {
		cfg.Data.StationsURL = *stations
	}
	if *trips != "" {
		cfg.Data.TripsURL = *trips
	}
	if *idField != "" {
		cfg.Data.StationIDField = *idField
	}
	if *cachePath != "" {
		cfg.Data.CachePath = *cachePath
	}
	if err := config.Validate(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDefaults(&cfg)

	logger := lib.InitLogging(cfg.LogLevel)
	ctx := context.Background()

	ds, err := loader.Load(ctx, cfg.Data)
	if err != nil {
		internal.LogError(logger, "failed to load dataset", err)
		os.Exit(1)
	}

	switch *mode {
	case "oneshot":
		f, err := traffic.ParseTimeFilter(*minute)
		if err != nil {
			internal.LogError(logger, "invalid -minute", err)
			os.Exit(2)
		}
		svc := lib.NewService(ds, cache.Noop{}, cfg)
		buf, err := svc.Traffic(ctx, f, *format)
		if err != nil {
			internal.LogError(logger, "failed to build response", err)
			os.Exit(1)
		}
		fmt.Println(string(buf))
	case "serve":
		rc, err := cache.New(cfg.Cache)
		if err != nil {
			internal.LogError(logger, "failed to create response cache", err)
			os.Exit(1)
		}
		defer func() { _ = rc.Close() }()
		if r, ok := rc.(*cache.Redis); ok {
			if err := r.Ping(ctx); err != nil {
				logger.Warn("redis unreachable, responses will be rendered uncached",
					slog.String("addr", cfg.Cache.RedisAddr),
					slog.String("error", err.Error()))
			}
		}
		srv := lib.NewServer(lib.NewService(ds, rc, cfg), cfg.Server.Port)
		srv.Start()
		srv.HandleGracefulShutdown()
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

func loadConfig(path string) error {
	if path == "" {
		return config.LoadAppConfig()
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}
	config.Config = *cfg
	return nil
}
