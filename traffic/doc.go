/*
Package traffic aggregates bike-share trips into per-station traffic counts
for a time-of-day window.

The package is data-source agnostic: it accepts already-parsed trips and
stations and never performs I/O. Loading station and trip datasets lives in
the loader package.

# Basic Usage

Build the aggregation context once per dataset and query it per filter:

	agg := traffic.NewAggregator(stations, trips)

	// All trips
	all := agg.Query(traffic.Unfiltered())

	// Trips within the window around 08:20
	f, err := traffic.Center(500)
	if err != nil {
	    return err
	}
	morning := agg.Query(f)

# Minute Buckets

Trips are partitioned once into 1,440 buckets keyed by departure minute and
again keyed by arrival minute. A window query concatenates the buckets in
[center-60, center+60) modulo 1440, so windows near midnight wrap around.
The high bound is exclusive.

# Station Join Key

Trips are matched to stations on Station.ID. The loader decides which upstream
field becomes the ID. Stations with no matching trips report zero traffic;
this is expected behavior, not an error.
*/
package traffic
