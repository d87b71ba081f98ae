package traffic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_MorningScenario(t *testing.T) {
	trips := []Trip{
		// Trip A: departs S1 at 08:05
		tripAt("S1", "S3", 485, 500),
		// Trip B: arrives at S1 at 08:50
		tripAt("S2", "S1", 520, 530),
	}
	agg := NewAggregator([]Station{{ID: "S1"}, {ID: "S2"}, {ID: "S3"}}, trips)

	s1, ok := agg.Station("S1", mustCenter(t, 500))
	require.True(t, ok)
	assert.Equal(t, 1, s1.Departures)
	assert.Equal(t, 1, s1.Arrivals)
	assert.Equal(t, 2, s1.TotalTraffic)
}

func TestAggregator_TripLiterals(t *testing.T) {
	trips := []Trip{{
		DepartureStationID: "S1",
		ArrivalStationID:   "S1",
		DepartedAt:         at(485),
		ArrivedAt:          at(530),
	}}
	agg := NewAggregator([]Station{{ID: "S1"}}, trips)

	s1, ok := agg.Station("S1", mustCenter(t, 500))
	require.True(t, ok)
	assert.Equal(t, 1, s1.Departures)
	assert.Equal(t, 1, s1.Arrivals)
	assert.Equal(t, 2, s1.TotalTraffic)
}

func TestAggregator_QueryDoesNotMutateSnapshot(t *testing.T) {
	stations := []Station{{ID: "S1", Longitude: -71.09, Latitude: 42.36}}
	agg := NewAggregator(stations, []Trip{tripAt("S1", "S1", 10, 20)})

	got := agg.Query(Unfiltered())
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].TotalTraffic)
	assert.Equal(t, -71.09, got[0].Longitude)

	assert.Zero(t, agg.Stations()[0].TotalTraffic)
	assert.Zero(t, stations[0].TotalTraffic)
}

func TestAggregator_QueryIsIdempotent(t *testing.T) {
	agg := NewAggregator([]Station{{ID: "S1"}}, []Trip{tripAt("S1", "S1", 600, 610)})
	f := mustCenter(t, 600)
	assert.Equal(t, agg.Query(f), agg.Query(f))

	empty := agg.Query(mustCenter(t, 0))
	assert.Zero(t, empty[0].TotalTraffic)
	assert.Equal(t, 2, agg.Query(f)[0].TotalTraffic)
}

func TestAggregator_QueryMinute(t *testing.T) {
	agg := NewAggregator([]Station{{ID: "S1"}}, []Trip{tripAt("S1", "S1", 600, 610)})

	all, err := agg.QueryMinute(-1)
	require.NoError(t, err)
	assert.Equal(t, 2, all[0].TotalTraffic)

	_, err = agg.QueryMinute(1440)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, ok := agg.Station("missing", Unfiltered())
	assert.False(t, ok)
}

func TestAggregator_ConcurrentQueries(t *testing.T) {
	agg := NewAggregator([]Station{{ID: "A"}, {ID: "B"}}, oneTripPerMinute())

	var wg sync.WaitGroup
	for center := 0; center < MinutesPerDay; center += 37 {
		wg.Add(1)
		go func(center int) {
			defer wg.Done()
			f, _ := Center(center)
			got := agg.Query(f)
			assert.Equal(t, 2*WindowRadius, got[0].Departures)
			assert.Equal(t, 2*WindowRadius, got[1].Arrivals)
		}(center)
	}
	wg.Wait()
}
