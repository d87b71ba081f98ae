// Package cache stores serialized traffic responses keyed by dataset snapshot,
// filter and format.
//
// Two backends are available: an in-process LRU (memory) and Redis for
// sharing rendered responses across instances. Query results are pure
// functions of (snapshot, filter), so entries never need invalidation beyond
// their TTL; a new dataset gets a new snapshot id and therefore new keys.
package cache
