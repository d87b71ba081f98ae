package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

var ranges = Ranges{MaxRadius: 25, FilteredMinRadius: 3, FilteredMaxRadius: 50}

func TestRadiusScale_Unfiltered(t *testing.T) {
	stations := []traffic.Station{{TotalTraffic: 0}, {TotalTraffic: 25}, {TotalTraffic: 100}}
	sc := NewRadiusScale(stations, traffic.Unfiltered(), ranges)

	assert.Equal(t, 100.0, sc.DomainMax)
	assert.InDelta(t, 0, sc.Radius(0), 1e-9)
	assert.InDelta(t, 12.5, sc.Radius(25), 1e-9)
	assert.InDelta(t, 25, sc.Radius(100), 1e-9)
	assert.InDelta(t, 25, sc.Radius(400), 1e-9, "clamped to domain")
}

func TestRadiusScale_Filtered(t *testing.T) {
	f, err := traffic.Center(500)
	require.NoError(t, err)
	sc := NewRadiusScale([]traffic.Station{{TotalTraffic: 16}}, f, ranges)

	assert.InDelta(t, 3, sc.Radius(0), 1e-9)
	assert.InDelta(t, 3+0.5*47, sc.Radius(4), 1e-9)
	assert.InDelta(t, 50, sc.Radius(16), 1e-9)
}

func TestRadiusScale_EmptyDomain(t *testing.T) {
	sc := NewRadiusScale([]traffic.Station{{}, {}}, traffic.Unfiltered(), ranges)
	assert.Equal(t, 0.0, sc.Radius(0))
	assert.Equal(t, 0.0, sc.Radius(10))
}

func TestFlowAndTooltip(t *testing.T) {
	busy := traffic.Station{ID: "S1", Departures: 7, Arrivals: 3, TotalTraffic: 10}
	flow := Flow(busy)
	require.NotNil(t, flow)
	assert.Equal(t, 1.0, *flow)
	assert.Equal(t, "10 trips (7 departures, 3 arrivals)", Tooltip(busy))

	assert.Nil(t, Flow(traffic.Station{ID: "idle"}))
}

func TestMarkers(t *testing.T) {
	stations := []traffic.Station{
		{ID: "S1", Longitude: -71.09, Latitude: 42.36, Departures: 1, Arrivals: 1, TotalTraffic: 2},
		{ID: "S2", Longitude: -71.1, Latitude: 42.35},
	}
	markers := Markers(stations, traffic.Unfiltered(), ranges)
	require.Len(t, markers, 2)

	assert.Equal(t, "S1", markers[0].ID)
	assert.InDelta(t, 25, markers[0].Radius, 1e-9)
	require.NotNil(t, markers[0].Flow)
	assert.Equal(t, 0.5, *markers[0].Flow)

	assert.Equal(t, 0.0, markers[1].Radius)
	assert.Nil(t, markers[1].Flow)
	assert.Equal(t, "0 trips (0 departures, 0 arrivals)", markers[1].Tooltip)
}
