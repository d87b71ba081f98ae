package formatter

import (
	"encoding/json"
)

// ResponseBuilder renders traffic responses
type ResponseBuilder struct{}

// NewResponseBuilder creates a new response builder for formatting traffic responses
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// BuildJSON serializes a traffic response to JSON
func (rb *ResponseBuilder) BuildJSON(res *TrafficResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}

// Build serializes res as "xml" or, for any other format, JSON
func (rb *ResponseBuilder) Build(res *TrafficResponse, format string) []byte {
	if format == "xml" {
		return rb.BuildXML(res)
	}
	return rb.BuildJSON(res)
}
