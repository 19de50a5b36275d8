// Package metric provides Prometheus metrics for chainmap-driver.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry and driver metrics
//   - collector.go: MapCollector exporting chainmap occupancy
//
// Metrics include:
//
//   - Iteration counters and latency histograms
//   - Run outcome counters
//   - Map entries, capacity, occupied slots and longest chain
//
// There is no HTTP endpoint. The registry is written in the Prometheus
// text format with WriteToTextfile, for the node_exporter textfile collector.
package metric
