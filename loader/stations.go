package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

type stationsDocument struct {
	Data struct {
		Stations []map[string]any `json:"stations"`
	} `json:"data"`
}

// ParseStations decodes a station JSON document and keys stations by idField.
// Records without that field or with out-of-range coordinates are skipped.
func ParseStations(r io.Reader, idField string) ([]traffic.Station, LoadStats, error) {
	var stats LoadStats
	if !validIDField(idField) {
		return nil, stats, fmt.Errorf("unsupported station id field %q", idField)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, stats, err
	}
	rows, err := decodeStationRows(raw)
	if err != nil {
		return nil, stats, err
	}

	logger := slog.Default().With(slog.String("component", "station_loader"))
	v := validator.New()
	stations := make([]traffic.Station, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		rec, err := toStationRecord(row, idField)
		if err == nil {
			err = v.Struct(rec)
		}
		if err == nil {
			if _, dup := seen[rec.ID]; dup {
				err = fmt.Errorf("duplicate station id %q", rec.ID)
			}
		}
		if err != nil {
			stats.StationsSkipped++
			logger.Debug("skipping station", slog.Int("row", i), slog.String("error", err.Error()))
			continue
		}
		seen[rec.ID] = struct{}{}
		stations = append(stations, traffic.Station{
			ID:        rec.ID,
			Name:      rec.Name,
			Longitude: rec.Longitude,
			Latitude:  rec.Latitude,
		})
	}
	stats.StationsLoaded = len(stations)
	return stations, stats, nil
}

func validIDField(f string) bool {
	return f == IDFieldShortName || f == IDFieldNumber || f == IDFieldStationID
}

func decodeStationRows(raw []byte) ([]map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var rows []map[string]any
		if err := decodeNumbers(raw, &rows); err != nil {
			return nil, fmt.Errorf("decode stations: %w", err)
		}
		return rows, nil
	}
	var doc stationsDocument
	if err := decodeNumbers(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}
	return doc.Data.Stations, nil
}

func decodeNumbers(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func toStationRecord(row map[string]any, idField string) (stationRecord, error) {
	var rec stationRecord
	if v, ok := row[idField]; ok {
		rec.ID = toStringFallback(v, "")
	}
	if v, ok := firstOf(row, "name", "NAME", "Name"); ok {
		rec.Name = toStringFallback(v, "")
	}
	lat, ok := firstOf(row, "lat", "Lat", "latitude")
	if !ok {
		return rec, fmt.Errorf("station %q has no latitude", rec.ID)
	}
	lon, ok := firstOf(row, "lon", "Long", "lng", "longitude")
	if !ok {
		return rec, fmt.Errorf("station %q has no longitude", rec.ID)
	}
	var err error
	if rec.Latitude, err = toFloat(lat); err != nil {
		return rec, fmt.Errorf("station %q latitude: %w", rec.ID, err)
	}
	if rec.Longitude, err = toFloat(lon); err != nil {
		return rec, fmt.Errorf("station %q longitude: %w", rec.ID, err)
	}
	return rec, nil
}
