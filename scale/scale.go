// Package scale maps aggregated station traffic onto marker attributes:
// a square-root radius, a quantized flow value and tooltip text.
package scale

import (
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// RadiusScale is a square-root scale from [0, DomainMax] onto [RangeMin, RangeMax].
type RadiusScale struct {
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// Ranges holds the radius ranges used with and without a time filter.
type Ranges struct {
	MaxRadius         float64
	FilteredMinRadius float64
	FilteredMaxRadius float64
}

// NewRadiusScale fits the domain to the busiest station. A centered filter
// switches to the filtered range so small windows stay visible.
func NewRadiusScale(stations []traffic.Station, f traffic.TimeFilter, r Ranges) RadiusScale {
	maxTraffic := 0
	for _, s := range stations {
		if s.TotalTraffic > maxTraffic {
			maxTraffic = s.TotalTraffic
		}
	}
	sc := RadiusScale{DomainMax: float64(maxTraffic), RangeMin: 0, RangeMax: r.MaxRadius}
	if f.IsCenter() {
		sc.RangeMin, sc.RangeMax = r.FilteredMinRadius, r.FilteredMaxRadius
	}
	return sc
}

// Radius maps a traffic value. Values are clamped to the domain; an empty
// domain maps everything to RangeMin.
func (s RadiusScale) Radius(totalTraffic int) float64 {
	if s.DomainMax <= 0 {
		return s.RangeMin
	}
	v := math.Min(math.Max(float64(totalTraffic), 0), s.DomainMax)
	t := math.Sqrt(v) / math.Sqrt(s.DomainMax)
	return s.RangeMin + t*(s.RangeMax-s.RangeMin)
}

// Flow returns the quantized departure share of a station, or nil when the
// station has no traffic.
func Flow(s traffic.Station) *float64 {
	r, ok := traffic.FlowRatio(s.Departures, s.TotalTraffic)
	if !ok {
		return nil
	}
	return &r
}

// Tooltip returns the marker hover text.
func Tooltip(s traffic.Station) string {
	return fmt.Sprintf("%d trips (%d departures, %d arrivals)", s.TotalTraffic, s.Departures, s.Arrivals)
}

// Marker is the render-ready view of a station.
type Marker struct {
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Radius    float64  `json:"radius"`
	Flow      *float64 `json:"flow"`
	Tooltip   string   `json:"tooltip"`
}

// Markers builds one marker per station in input order.
func Markers(stations []traffic.Station, f traffic.TimeFilter, r Ranges) []Marker {
	sc := NewRadiusScale(stations, f, r)
	out := make([]Marker, len(stations))
	for i, s := range stations {
		out[i] = Marker{
			ID:        s.ID,
			Name:      s.Name,
			Longitude: s.Longitude,
			Latitude:  s.Latitude,
			Radius:    sc.Radius(s.TotalTraffic),
			Flow:      Flow(s),
			Tooltip:   Tooltip(s),
		}
	}
	return out
}
