package traffic

import "time"

func at(minute int) time.Time {
	return time.Date(2024, time.March, 14, minute/60, minute%60, 0, 0, time.UTC)
}

func tripAt(from, to string, depMinute, arrMinute int) Trip {
	return NewTrip(from, to, at(depMinute), at(arrMinute))
}

func minutesOf(trips []*Trip, minute func(*Trip) int) map[int]int {
	out := map[int]int{}
	for _, t := range trips {
		out[minute(t)]++
	}
	return out
}

// oneTripPerMinute returns a trip departing and arriving at every minute of the day.
func oneTripPerMinute() []Trip {
	trips := make([]Trip, 0, MinutesPerDay)
	for m := 0; m < MinutesPerDay; m++ {
		trips = append(trips, tripAt("A", "B", m, m))
	}
	return trips
}
