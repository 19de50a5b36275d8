// Package driver runs the chainmap exercise loop behind chainmap-driver.
//
// Each iteration constructs a fresh map with the configured capacity and
// performs a single index assignment:
//
//	m := chainmap.MustNew[int, string](chainmap.WithCapacity(1024))
//	*m.At(1) = "TODO"
//
// A run is identified by a ULID, optionally paced by a token bucket, and
// reports its iteration counts, latencies and the occupancy of the last map
// to a metric.Registry.
package driver
