package biketraffic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseMinuteParam reads the minute query parameter. Empty and -1 mean unfiltered.
func parseMinuteParam(s string) (traffic.TimeFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return traffic.Unfiltered(), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return traffic.TimeFilter{}, &QueryError{Msg: "minute must be an integer."}
	}
	f, err := traffic.ParseTimeFilter(v)
	if err != nil {
		var iae *traffic.InvalidArgumentError
		if errors.As(err, &iae) {
			return traffic.TimeFilter{}, &QueryError{Msg: "minute " + iae.Msg + "."}
		}
		return traffic.TimeFilter{}, &QueryError{Msg: err.Error()}
	}
	return f, nil
}

func normalizeFormat(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "json":
		return "json", nil
	case "xml":
		return "xml", nil
	}
	return "", &QueryError{Msg: "Unsupported format: " + s}
}
