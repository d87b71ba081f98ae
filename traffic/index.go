package traffic

// Bucket holds the trips sharing one minute-of-day.
type Bucket []*Trip

// BucketIndex partitions a trip set by departure minute and by arrival minute.
// It holds pointers into the trip slice it was built from and must not be
// modified after Build returns.
type BucketIndex struct {
	departures [MinutesPerDay]Bucket
	arrivals   [MinutesPerDay]Bucket
	size       int
}

// Build indexes trips in a single pass. Each trip's departure and arrival
// minutes are derived from its timestamps and stored on the trip.
// Trips keep their input order within a bucket.
func Build(trips []Trip) *BucketIndex {
	idx := &BucketIndex{size: len(trips)}
	for i := range trips {
		t := &trips[i]
		t.departureMinute = MinuteOfDay(t.DepartedAt)
		t.arrivalMinute = MinuteOfDay(t.ArrivedAt)
		idx.departures[t.departureMinute] = append(idx.departures[t.departureMinute], t)
		idx.arrivals[t.arrivalMinute] = append(idx.arrivals[t.arrivalMinute], t)
	}
	return idx
}

// Departures returns the 1,440 departure buckets.
func (idx *BucketIndex) Departures() []Bucket { return idx.departures[:] }

// Arrivals returns the 1,440 arrival buckets.
func (idx *BucketIndex) Arrivals() []Bucket { return idx.arrivals[:] }

// Len returns the number of indexed trips.
func (idx *BucketIndex) Len() int { return idx.size }

// DeparturesWithin returns the trips departing inside the filter window.
func (idx *BucketIndex) DeparturesWithin(f TimeFilter) []*Trip {
	return FilterByMinute(idx.Departures(), f)
}

// ArrivalsWithin returns the trips arriving inside the filter window.
func (idx *BucketIndex) ArrivalsWithin(f TimeFilter) []*Trip {
	return FilterByMinute(idx.Arrivals(), f)
}
