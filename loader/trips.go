package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

var tripTimeLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses a trip timestamp into loc. Values carrying an offset
// are converted; all others are read as wall-clock time in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range tripTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ParseTrips reads trip CSV rows. A missing required column is an error;
// rows with empty station ids or bad timestamps are skipped and counted.
func ParseTrips(r io.Reader, loc *time.Location) ([]traffic.Trip, LoadStats, error) {
	var stats LoadStats
	if loc == nil {
		loc = time.UTC
	}
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.ReuseRecord = true
	head, err := csvr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, nil
		}
		return nil, stats, fmt.Errorf("read trips header: %w", err)
	}
	head = append([]string(nil), head...)
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), col) {
				return i
			}
		}
		return -1
	}
	start, end := idx("start_station_id"), idx("end_station_id")
	startedAt, endedAt := idx("started_at"), idx("ended_at")
	for name, i := range map[string]int{
		"start_station_id": start,
		"end_station_id":   end,
		"started_at":       startedAt,
		"ended_at":         endedAt,
	} {
		if i < 0 {
			return nil, stats, fmt.Errorf("trips csv: missing column %s", name)
		}
	}
	last := max(start, end, startedAt, endedAt)

	logger := slog.Default().With(slog.String("component", "trip_loader"))
	var trips []traffic.Trip
	for line := 2; ; line++ {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("trips csv line %d: %w", line, err)
		}
		if len(row) <= last {
			stats.TripsSkipped++
			continue
		}
		from, to := strings.TrimSpace(row[start]), strings.TrimSpace(row[end])
		if from == "" || to == "" {
			stats.TripsSkipped++
			continue
		}
		dep, err := ParseTimestamp(row[startedAt], loc)
		if err != nil {
			stats.TripsSkipped++
			logger.Debug("skipping trip", slog.Int("line", line), slog.String("error", err.Error()))
			continue
		}
		arr, err := ParseTimestamp(row[endedAt], loc)
		if err != nil {
			stats.TripsSkipped++
			logger.Debug("skipping trip", slog.Int("line", line), slog.String("error", err.Error()))
			continue
		}
		trips = append(trips, traffic.NewTrip(from, to, dep, arr))
	}
	stats.TripsLoaded = len(trips)
	return trips, stats, nil
}
