package traffic

// Aggregate overwrites the traffic counts of every station from the given
// departure and arrival trip sets. Departures are grouped by
// DepartureStationID and arrivals by ArrivalStationID. Stations with no
// matching trips get zero counts.
func Aggregate(stations []Station, departureTrips, arrivalTrips []*Trip) {
	departures := countBy(departureTrips, func(t *Trip) string { return t.DepartureStationID })
	arrivals := countBy(arrivalTrips, func(t *Trip) string { return t.ArrivalStationID })
	for i := range stations {
		s := &stations[i]
		s.Departures = departures[s.ID]
		s.Arrivals = arrivals[s.ID]
		s.TotalTraffic = s.Departures + s.Arrivals
	}
}

func countBy(trips []*Trip, key func(*Trip) string) map[string]int {
	counts := make(map[string]int)
	for _, t := range trips {
		counts[key(t)]++
	}
	return counts
}

// Summary describes a single aggregation result.
type Summary struct {
	DepartingTrips   int    `json:"departingTrips"`
	ArrivingTrips    int    `json:"arrivingTrips"`
	ActiveStations   int    `json:"activeStations"`
	BusiestStationID string `json:"busiestStationId,omitempty"`
	MaxTotalTraffic  int    `json:"maxTotalTraffic"`
}

// Summarize computes totals over aggregated stations. Only trips that matched
// a station are counted. Ties for the busiest station keep the earliest one.
func Summarize(stations []Station) Summary {
	var s Summary
	for _, st := range stations {
		s.DepartingTrips += st.Departures
		s.ArrivingTrips += st.Arrivals
		if st.TotalTraffic > 0 {
			s.ActiveStations++
		}
		if st.TotalTraffic > s.MaxTotalTraffic {
			s.MaxTotalTraffic = st.TotalTraffic
			s.BusiestStationID = st.ID
		}
	}
	return s
}
