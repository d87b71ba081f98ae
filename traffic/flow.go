package traffic

// FlowRatio quantizes departures/totalTraffic into 0, 0.5 or 1 using
// thresholds at 1/3 and 2/3. It returns ok=false when totalTraffic is not
// positive, meaning the station has no flow ratio.
func FlowRatio(departures, totalTraffic int) (ratio float64, ok bool) {
	if totalTraffic <= 0 {
		return 0, false
	}
	r := float64(departures) / float64(totalTraffic)
	switch {
	case r < 1.0/3:
		return 0, true
	case r < 2.0/3:
		return 0.5, true
	default:
		return 1, true
	}
}
