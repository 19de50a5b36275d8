package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "chainmap"

// Run results recorded by RecordRun.
const (
	ResultOK       = "ok"
	ResultCanceled = "canceled"
	ResultError    = "error"
)

// Registry holds all driver metrics.
type Registry struct {
	registry *prometheus.Registry

	// Driver metrics
	Iterations        prometheus.Counter
	IterationDuration prometheus.Histogram
	Runs              *prometheus.CounterVec
}

// NewRegistry creates a registry with the driver metrics and the Go runtime
// collector registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "driver",
			Name:      "iterations_total",
			Help:      "Number of construct-and-assign iterations completed.",
		}),
		IterationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "driver",
			Name:      "iteration_duration_seconds",
			Help:      "Duration of a single driver iteration.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "driver",
			Name:      "runs_total",
			Help:      "Number of driver runs by result.",
		}, []string{"result"}),
	}

	r.registry.MustRegister(
		r.Iterations,
		r.IterationDuration,
		r.Runs,
		collectors.NewGoCollector(),
	)
	return r
}

// IncIteration counts one completed iteration.
func (r *Registry) IncIteration() {
	r.Iterations.Inc()
}

// ObserveIteration records the duration of one iteration in seconds.
func (r *Registry) ObserveIteration(seconds float64) {
	r.IterationDuration.Observe(seconds)
}

// RecordRun counts a finished run.
func (r *Registry) RecordRun(result string) {
	r.Runs.WithLabelValues(result).Inc()
}

// TrackMap registers a MapCollector for src under the given map label.
func (r *Registry) TrackMap(name string, src StatsSource) error {
	if err := r.registry.Register(NewMapCollector(name, src)); err != nil {
		return fmt.Errorf("register map collector %q: %w", name, err)
	}
	return nil
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteToTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Registry) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
