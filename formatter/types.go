package formatter

import (
	"github.com/theoremus-urban-solutions/bikeshare-traffic/scale"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// TrafficResponse is the document served for one traffic query
type TrafficResponse struct {
	ResponseTimestamp string          `json:"ResponseTimestamp"`
	ValidUntil        string          `json:"ValidUntil,omitempty"`
	SnapshotID        string          `json:"SnapshotID"`
	Filter            FilterInfo      `json:"Filter"`
	Summary           traffic.Summary `json:"Summary"`
	Stations          []StationEntry  `json:"Stations"`
}

// FilterInfo describes the applied time filter
type FilterInfo struct {
	Minute int    `json:"minute"`
	Label  string `json:"label"`
	// Window bounds are half-open [WindowStart, WindowEnd) minutes, omitted when unfiltered
	WindowStart *int `json:"windowStart,omitempty"`
	WindowEnd   *int `json:"windowEnd,omitempty"`
}

// StationEntry is one station's traffic and marker attributes
type StationEntry struct {
	traffic.Station
	Radius  float64  `json:"radius"`
	Flow    *float64 `json:"flow"`
	Tooltip string   `json:"tooltip"`
}

// StationEntries joins stations with their markers
func StationEntries(stations []traffic.Station, markers []scale.Marker) []StationEntry {
	out := make([]StationEntry, len(stations))
	for i, s := range stations {
		out[i] = StationEntry{Station: s}
		if i < len(markers) {
			out[i].Radius = markers[i].Radius
			out[i].Flow = markers[i].Flow
			out[i].Tooltip = markers[i].Tooltip
		}
	}
	return out
}
