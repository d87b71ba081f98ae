package traffic

import "fmt"

// UnfilteredSentinel is the legacy integer encoding for "no time filter".
const UnfilteredSentinel = -1

// TimeFilter selects either all trips or the trips around a center minute.
// The zero value is Unfiltered.
type TimeFilter struct {
	minute   int
	centered bool
}

// Unfiltered returns the filter that matches every trip.
func Unfiltered() TimeFilter { return TimeFilter{} }

// Center returns a filter centered on minute, which must be within [0,1439].
func Center(minute int) (TimeFilter, error) {
	if minute < 0 || minute >= MinutesPerDay {
		return TimeFilter{}, &InvalidArgumentError{
			Field: "minute",
			Value: minute,
			Msg:   fmt.Sprintf("must be within [0,%d]", MinutesPerDay-1),
		}
	}
	return TimeFilter{minute: minute, centered: true}, nil
}

// ParseTimeFilter converts the legacy integer encoding: -1 is Unfiltered,
// [0,1439] is a center minute, anything else is rejected.
func ParseTimeFilter(v int) (TimeFilter, error) {
	if v == UnfilteredSentinel {
		return Unfiltered(), nil
	}
	f, err := Center(v)
	if err != nil {
		return TimeFilter{}, &InvalidArgumentError{
			Field: "minute",
			Value: v,
			Msg:   fmt.Sprintf("must be %d or within [0,%d]", UnfilteredSentinel, MinutesPerDay-1),
		}
	}
	return f, nil
}

// IsCenter reports whether the filter restricts trips to a window.
func (f TimeFilter) IsCenter() bool { return f.centered }

// Minute returns the center minute and whether the filter has one.
func (f TimeFilter) Minute() (int, bool) { return f.minute, f.centered }

// Int returns the legacy integer encoding of the filter.
func (f TimeFilter) Int() int {
	if !f.centered {
		return UnfilteredSentinel
	}
	return f.minute
}

func (f TimeFilter) String() string {
	if !f.centered {
		return "unfiltered"
	}
	return fmt.Sprintf("%02d:%02d", f.minute/60, f.minute%60)
}
