package loader

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStations_Fixture(t *testing.T) {
	f, err := os.Open(testdataPath("stations.json"))
	require.NoError(t, err)
	defer f.Close()

	stations, stats, err := ParseStations(f, IDFieldShortName)
	require.NoError(t, err)

	ids := make([]string, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"M32006", "M32011", "M32041", "M32015"}, ids)
	assert.Equal(t, 4, stats.StationsLoaded)
	// one station has no short_name, one has an out-of-range latitude
	assert.Equal(t, 2, stats.StationsSkipped)

	ames := stations[2]
	assert.Equal(t, "Ames St at Main St", ames.Name)
	assert.InDelta(t, 42.3625, ames.Latitude, 1e-9)
	assert.InDelta(t, -71.08822, ames.Longitude, 1e-9)
	assert.Zero(t, ames.TotalTraffic)
}

func TestParseStations_IDFields(t *testing.T) {
	doc := `{"data":{"stations":[{"station_id":"67","short_name":"M32006","Number":"M32006","lat":42.3,"lon":-71.1}]}}`

	tests := []struct {
		field string
		want  string
	}{
		{IDFieldShortName, "M32006"},
		{IDFieldNumber, "M32006"},
		{IDFieldStationID, "67"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			stations, _, err := ParseStations(strings.NewReader(doc), tt.field)
			require.NoError(t, err)
			require.Len(t, stations, 1)
			assert.Equal(t, tt.want, stations[0].ID)
		})
	}

	_, _, err := ParseStations(strings.NewReader(doc), "id")
	assert.Error(t, err)
}

func TestParseStations_TopLevelArray(t *testing.T) {
	doc := `[{"Number":"A32000","NAME":"Fan Pier","Lat":"42.353","Long":"-71.044"},{"Number":"A32000","Lat":1,"Long":1}]`
	stations, stats, err := ParseStations(strings.NewReader(doc), IDFieldNumber)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Fan Pier", stations[0].Name)
	assert.Equal(t, 1, stats.StationsSkipped, "duplicate id is skipped")
}

func TestParseStations_NumericIDs(t *testing.T) {
	doc := `{"data":{"stations":[{"station_id":67,"lat":42.3,"lon":-71.1}]}}`
	stations, _, err := ParseStations(strings.NewReader(doc), IDFieldStationID)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "67", stations[0].ID)
}

func TestParseStations_Malformed(t *testing.T) {
	_, _, err := ParseStations(strings.NewReader(`{"data":`), IDFieldShortName)
	assert.Error(t, err)
}
