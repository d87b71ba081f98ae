/*
Package loader reads bike-share station and trip datasets into the types the
traffic package aggregates.

Sources are either HTTP(S) URLs or local file paths:

	ds, err := loader.Load(ctx, config.Config.Data)
	if err != nil {
	    log.Fatal(err)
	}
	agg := traffic.NewAggregator(ds.Stations, ds.Trips)

# Stations

Station JSON follows the GBFS station_information shape ({"data":{"stations":[...]}});
a bare top-level array is accepted too. Coordinates are read from lat/lon or Lat/Long,
as numbers or numeric strings.

# Station IDs

Trips and stations come from different upstream sources. The station field used
as the join key is configured with stationIDField: short_name (default), Number
or station_id. Trip station ids that match no station are reported in
LoadStats.UnmatchedStationIDs and logged; the affected traffic is silently dropped
by aggregation.

# Trips

Trip CSV must carry start_station_id, end_station_id, started_at and ended_at
columns (any order, case-insensitive). Timestamps without an offset are read in
the configured timezone. Rows with unparseable timestamps are skipped and counted.

# Caching

Parsing a month of trips takes seconds. SerializeDatasetToFile and
DeserializeDatasetFromFile keep a gob snapshot on disk between runs.
*/
package loader
