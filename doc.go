// Package biketraffic serves per-station bike-share traffic for a time-of-day window.
//
// A Service wraps one loaded dataset: it answers traffic queries through the
// traffic aggregator, scales the results into marker attributes, renders JSON
// or XML and memoizes rendered documents in a response cache. The HTTP server
// exposes the service under /api.
package biketraffic
