package utils

import (
	"fmt"
	"time"
)

// Iso8601FromTime formats t in UTC as ISO8601
func Iso8601FromTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatMinuteOfDay renders a minute-of-day as a 12-hour clock label, e.g. "08:20 AM".
// Values outside [0,1439] wrap around the day.
func FormatMinuteOfDay(minute int) string {
	minute = ((minute % 1440) + 1440) % 1440
	h, m := minute/60, minute%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

// ValidUntil returns the ISO8601 time ttlSeconds after base, or "" when ttlSeconds <= 0
func ValidUntil(base time.Time, ttlSeconds int) string {
	if base.IsZero() || ttlSeconds <= 0 {
		return ""
	}
	return base.Add(time.Duration(ttlSeconds) * time.Second).UTC().Format(time.RFC3339)
}
