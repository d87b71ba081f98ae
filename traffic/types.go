package traffic

import "time"

const (
	// MinutesPerDay is the number of minute buckets in an index.
	MinutesPerDay = 1440
	// WindowRadius is the number of minutes on either side of a window center.
	WindowRadius = 60
)

// Trip is a single bike rental between two stations.
type Trip struct {
	DepartureStationID string    `json:"departure_station_id"`
	ArrivalStationID   string    `json:"arrival_station_id"`
	DepartedAt         time.Time `json:"departed_at"`
	ArrivedAt          time.Time `json:"arrived_at"`

	departureMinute int
	arrivalMinute   int
}

// NewTrip creates a trip and derives its departure and arrival minutes.
func NewTrip(departureStationID, arrivalStationID string, departedAt, arrivedAt time.Time) Trip {
	return Trip{
		DepartureStationID: departureStationID,
		ArrivalStationID:   arrivalStationID,
		DepartedAt:         departedAt,
		ArrivedAt:          arrivedAt,
		departureMinute:    MinuteOfDay(departedAt),
		arrivalMinute:      MinuteOfDay(arrivedAt),
	}
}

// DepartureMinute returns the minute-of-day the trip departed.
func (t *Trip) DepartureMinute() int { return t.departureMinute }

// ArrivalMinute returns the minute-of-day the trip arrived.
func (t *Trip) ArrivalMinute() int { return t.arrivalMinute }

// Station is a docking station with derived traffic counts.
// Departures, Arrivals and TotalTraffic are overwritten on every aggregation.
type Station struct {
	ID           string  `json:"id"`
	Name         string  `json:"name,omitempty"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	Departures   int     `json:"departures"`
	Arrivals     int     `json:"arrivals"`
	TotalTraffic int     `json:"totalTraffic"`
}

// MinuteOfDay returns hour*60+minute of t in t's own location.
// Seconds and the calendar date are ignored.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
