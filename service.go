package biketraffic

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/cache"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/loader"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/scale"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// Service answers traffic queries for one dataset snapshot.
type Service struct {
	dataset    *loader.Dataset
	agg        *traffic.Aggregator
	cache      cache.ResponseCache
	rb         *formatter.ResponseBuilder
	ranges     scale.Ranges
	ttlSeconds int
	logger     *slog.Logger
	now        func() time.Time
}

// NewService indexes the dataset. A nil cache disables response caching.
func NewService(ds *loader.Dataset, rc cache.ResponseCache, cfg config.AppConfig) *Service {
	if rc == nil {
		rc = cache.Noop{}
	}
	return &Service{
		dataset: ds,
		agg:     traffic.NewAggregator(ds.Stations, ds.Trips),
		cache:   rc,
		rb:      formatter.NewResponseBuilder(),
		ranges: scale.Ranges{
			MaxRadius:         cfg.Scale.MaxRadius,
			FilteredMinRadius: cfg.Scale.FilteredMinRadius,
			FilteredMaxRadius: cfg.Scale.FilteredMaxRadius,
		},
		ttlSeconds: int(cfg.Cache.TTL() / time.Second),
		logger:     slog.Default().With(slog.String("component", "traffic_service")),
		now:        time.Now,
	}
}

// Dataset returns the dataset the service was built from.
func (s *Service) Dataset() *loader.Dataset { return s.dataset }

// Stations returns the station snapshot without traffic.
func (s *Service) Stations() []traffic.Station { return s.agg.Stations() }

// TrafficResponse aggregates and scales stations for f.
func (s *Service) TrafficResponse(f traffic.TimeFilter) *formatter.TrafficResponse {
	stations := s.agg.Query(f)
	return formatter.WrapTrafficResponse(s.now(), s.ttlSeconds, s.dataset.SnapshotID.String(), f, stations, s.ranges)
}

// Traffic returns the rendered response for f in format (json or xml).
// Cache failures are logged and the response is rendered directly.
func (s *Service) Traffic(ctx context.Context, f traffic.TimeFilter, format string) ([]byte, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}
	key := cache.MemoKey(s.dataset.SnapshotID.String(), strconv.Itoa(f.Int()), format)
	if b, ok, err := s.cache.Get(ctx, key); err != nil {
		internal.LogError(s.logger, "response cache read failed", err, slog.String("key", key))
	} else if ok {
		return b, nil
	}

	b := s.rb.Build(s.TrafficResponse(f), format)
	if err := s.cache.Set(ctx, key, b); err != nil {
		internal.LogError(s.logger, "response cache write failed", err, slog.String("key", key))
	}
	return b, nil
}

// StationTraffic returns one station's traffic and marker attributes for f.
func (s *Service) StationTraffic(id string, f traffic.TimeFilter) (formatter.StationEntry, bool) {
	stations := s.agg.Query(f)
	markers := scale.Markers(stations, f, s.ranges)
	for i, st := range stations {
		if st.ID == id {
			return formatter.StationEntries(stations[i:i+1], markers[i:i+1])[0], true
		}
	}
	return formatter.StationEntry{}, false
}
