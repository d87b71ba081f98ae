package formatter

import (
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/scale"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/utils"
)

// BuildFilterInfo describes f for the response
func BuildFilterInfo(f traffic.TimeFilter) FilterInfo {
	info := FilterInfo{Minute: f.Int(), Label: "any time"}
	if m, ok := f.Minute(); ok {
		lo, hi, _ := traffic.WindowBounds(f)
		info.Label = utils.FormatMinuteOfDay(m)
		info.WindowStart = &lo
		info.WindowEnd = &hi
	}
	return info
}

// WrapTrafficResponse builds a complete response for aggregated stations
func WrapTrafficResponse(now time.Time, ttlSeconds int, snapshotID string, f traffic.TimeFilter, stations []traffic.Station, r scale.Ranges) *TrafficResponse {
	return &TrafficResponse{
		ResponseTimestamp: utils.Iso8601FromTime(now),
		ValidUntil:        utils.ValidUntil(now, ttlSeconds),
		SnapshotID:        snapshotID,
		Filter:            BuildFilterInfo(f),
		Summary:           traffic.Summarize(stations),
		Stations:          StationEntries(stations, scale.Markers(stations, f, r)),
	}
}
