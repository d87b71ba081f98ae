// Package formatter provides response wrapping and serialization for station traffic responses.
//
// This package is organized into:
// - types.go: the response document
// - wrapper.go: building a response from aggregated stations
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
package formatter
