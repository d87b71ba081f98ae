// Package utils provides internal utility functions for the bikeshare traffic service.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting and conversion utilities
//   - Minute-of-day labels for time filters
package utils
