package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

const defaultFetchTimeout = 2 * time.Minute

// Load fetches and parses the station and trip datasets named by cfg.
// When cfg.CachePath is set, a cache file built from the same sources and
// parse settings is used instead, and a fresh load is written back to it.
func Load(ctx context.Context, cfg config.DataConfig) (*Dataset, error) {
	logger := slog.Default().With(slog.String("component", "loader"))
	source := SourceKey(cfg)
	if cfg.CachePath != "" {
		ds, err := DeserializeDatasetFromFile(cfg.CachePath)
		switch {
		case err != nil:
			logger.Info("dataset cache unavailable, loading sources", slog.String("error", err.Error()))
		case ds.Source != source:
			logger.Info("dataset cache built from other sources, loading sources",
				slog.String("path", cfg.CachePath),
				slog.String("cached", ds.Source),
				slog.String("wanted", source))
		default:
			logger.Info("dataset loaded from cache",
				slog.String("path", cfg.CachePath),
				slog.String("snapshot", ds.SnapshotID.String()),
				slog.Int("stations", len(ds.Stations)),
				slog.Int("trips", len(ds.Trips)))
			return ds, nil
		}
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	idField := stationIDField(cfg)

	f := NewFetcher(defaultFetchTimeout)
	stations, stationStats, err := loadStations(ctx, f, cfg.StationsURL, idField)
	if err != nil {
		return nil, err
	}
	trips, tripStats, err := loadTrips(ctx, f, cfg.TripsURL, loc)
	if err != nil {
		return nil, err
	}

	ds := NewDataset(stations, trips)
	ds.Source = source
	ds.Stats.StationsSkipped = stationStats.StationsSkipped
	ds.Stats.TripsSkipped = tripStats.TripsSkipped
	logger.Info("dataset loaded",
		slog.String("snapshot", ds.SnapshotID.String()),
		slog.Int("stations", ds.Stats.StationsLoaded),
		slog.Int("stations_skipped", ds.Stats.StationsSkipped),
		slog.Int("trips", ds.Stats.TripsLoaded),
		slog.Int("trips_skipped", ds.Stats.TripsSkipped))
	if n := len(ds.Stats.UnmatchedStationIDs); n > 0 {
		logger.Warn("trip station ids match no station; their traffic is dropped",
			slog.String("id_field", idField),
			slog.Int("unmatched", n),
			slog.Any("sample", sample(ds.Stats.UnmatchedStationIDs, 5)))
	}

	if cfg.CachePath != "" {
		if err := SerializeDatasetToFile(ds, cfg.CachePath); err != nil {
			logger.Warn("failed to write dataset cache", slog.String("error", err.Error()))
		}
	}
	return ds, nil
}

// SourceKey identifies the sources and parse settings a dataset is built from.
func SourceKey(cfg config.DataConfig) string {
	return strings.Join([]string{cfg.StationsURL, cfg.TripsURL, stationIDField(cfg), cfg.Timezone}, "|")
}

func stationIDField(cfg config.DataConfig) string {
	if cfg.StationIDField == "" {
		return IDFieldShortName
	}
	return cfg.StationIDField
}

// NewDataset wraps parsed stations and trips in a new snapshot.
func NewDataset(stations []traffic.Station, trips []traffic.Trip) *Dataset {
	return &Dataset{
		SnapshotID: uuid.New(),
		LoadedAt:   time.Now().UTC(),
		Stations:   stations,
		Trips:      trips,
		Stats: LoadStats{
			StationsLoaded:      len(stations),
			TripsLoaded:         len(trips),
			UnmatchedStationIDs: UnmatchedStationIDs(stations, trips),
		},
	}
}

func loadStations(ctx context.Context, f *Fetcher, src, idField string) ([]traffic.Station, LoadStats, error) {
	rc, err := f.Open(ctx, src)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("stations: %w", err)
	}
	defer func() { _ = rc.Close() }()
	stations, stats, err := ParseStations(rc, idField)
	if err != nil {
		return nil, stats, fmt.Errorf("stations: %w", err)
	}
	return stations, stats, nil
}

func loadTrips(ctx context.Context, f *Fetcher, src string, loc *time.Location) ([]traffic.Trip, LoadStats, error) {
	rc, err := f.Open(ctx, src)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("trips: %w", err)
	}
	defer func() { _ = rc.Close() }()
	trips, stats, err := ParseTrips(rc, loc)
	if err != nil {
		return nil, stats, fmt.Errorf("trips: %w", err)
	}
	return trips, stats, nil
}

// UnmatchedStationIDs returns the sorted trip station ids that no station carries.
func UnmatchedStationIDs(stations []traffic.Station, trips []traffic.Trip) []string {
	known := make(map[string]struct{}, len(stations))
	for _, s := range stations {
		known[s.ID] = struct{}{}
	}
	missing := map[string]struct{}{}
	for _, t := range trips {
		for _, id := range [2]string{t.DepartureStationID, t.ArrivalStationID} {
			if _, ok := known[id]; !ok {
				missing[id] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(missing))
	for id := range missing {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func sample(ids []string, n int) []string {
	if len(ids) <= n {
		return ids
	}
	return ids[:n]
}
