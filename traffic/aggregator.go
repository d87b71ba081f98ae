package traffic

import (
	"log/slog"
	"time"
)

// Aggregator is the aggregation context for one dataset. It owns the bucket
// index and the base station snapshot. Query may be called concurrently:
// the index is read-only and every call works on its own station copy.
type Aggregator struct {
	index    *BucketIndex
	stations []Station
	logger   *slog.Logger
}

// NewAggregator indexes trips and keeps a private copy of stations.
func NewAggregator(stations []Station, trips []Trip) *Aggregator {
	logger := slog.Default().With(slog.String("component", "traffic_aggregator"))
	start := time.Now()
	idx := Build(trips)
	base := make([]Station, len(stations))
	copy(base, stations)
	logger.Debug("bucket index built",
		slog.Int("trips", idx.Len()),
		slog.Int("stations", len(base)),
		slog.Duration("elapsed", time.Since(start)))
	return &Aggregator{index: idx, stations: base, logger: logger}
}

// Index returns the bucket index backing the aggregator.
func (a *Aggregator) Index() *BucketIndex { return a.index }

// Stations returns a copy of the station snapshot without traffic counts applied.
func (a *Aggregator) Stations() []Station {
	out := make([]Station, len(a.stations))
	copy(out, a.stations)
	return out
}

// Query returns the stations with traffic counts for the filter window.
func (a *Aggregator) Query(f TimeFilter) []Station {
	out := a.Stations()
	Aggregate(out, a.index.DeparturesWithin(f), a.index.ArrivalsWithin(f))
	return out
}

// QueryMinute is Query for the legacy integer encoding (-1 for all trips).
func (a *Aggregator) QueryMinute(v int) ([]Station, error) {
	f, err := ParseTimeFilter(v)
	if err != nil {
		return nil, err
	}
	return a.Query(f), nil
}

// Station returns the traffic of a single station for the filter window.
func (a *Aggregator) Station(id string, f TimeFilter) (Station, bool) {
	for _, s := range a.Query(f) {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}
