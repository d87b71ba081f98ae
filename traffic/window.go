package traffic

// WindowBounds returns the half-open bucket range [lo, hi) selected by a
// centered filter and whether it wraps past midnight. For Unfiltered it
// returns the whole day.
func WindowBounds(f TimeFilter) (lo, hi int, wraps bool) {
	t, ok := f.Minute()
	if !ok {
		return 0, MinutesPerDay, false
	}
	lo = (t - WindowRadius + MinutesPerDay) % MinutesPerDay
	hi = (t + WindowRadius) % MinutesPerDay
	return lo, hi, lo > hi
}

// FilterByMinute flattens the buckets selected by f. bucketsByMinute must
// have MinutesPerDay entries. The returned slice is freshly allocated.
func FilterByMinute(bucketsByMinute []Bucket, f TimeFilter) []*Trip {
	lo, hi, wraps := WindowBounds(f)
	if !wraps {
		return flatten(bucketsByMinute[lo:hi])
	}
	out := flatten(bucketsByMinute[lo:])
	for _, b := range bucketsByMinute[:hi] {
		out = append(out, b...)
	}
	return out
}

func flatten(buckets []Bucket) []*Trip {
	n := 0
	for _, b := range buckets {
		n += len(b)
	}
	out := make([]*Trip, 0, n)
	for _, b := range buckets {
		out = append(out, b...)
	}
	return out
}
