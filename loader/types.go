package loader

import (
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// Dataset is one loaded snapshot of stations and trips.
type Dataset struct {
	SnapshotID uuid.UUID
	// Source is the SourceKey of the configuration that produced the dataset.
	Source   string
	LoadedAt time.Time
	Stations []traffic.Station
	Trips    []traffic.Trip
	Stats    LoadStats
}

// LoadStats reports what the loaders kept and skipped.
type LoadStats struct {
	StationsLoaded      int
	StationsSkipped     int
	TripsLoaded         int
	TripsSkipped        int
	UnmatchedStationIDs []string
}

// Station id fields accepted by ParseStations.
const (
	IDFieldShortName = "short_name"
	IDFieldNumber    = "Number"
	IDFieldStationID = "station_id"
)

// stationRecord is validated before it becomes a traffic.Station.
type stationRecord struct {
	ID        string  `validate:"required"`
	Name      string  `validate:"omitempty"`
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}
