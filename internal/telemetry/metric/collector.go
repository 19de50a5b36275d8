package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/chainmap/pkg/chainmap"
)

// StatsSource is anything that can report chainmap occupancy.
type StatsSource interface {
	Stats() chainmap.Stats
}

// MapCollector exports the occupancy of one map.
// Values are read from the source on every scrape.
type MapCollector struct {
	src StatsSource

	entries      *prometheus.Desc
	capacity     *prometheus.Desc
	occupied     *prometheus.Desc
	longestChain *prometheus.Desc
	loadFactor   *prometheus.Desc
}

// NewMapCollector creates a collector for src labeled with map=name.
func NewMapCollector(name string, src StatsSource) *MapCollector {
	labels := prometheus.Labels{"map": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "map", metric), help, nil, labels)
	}
	return &MapCollector{
		src:          src,
		entries:      desc("entries", "Number of entries stored."),
		capacity:     desc("capacity", "Number of bucket slots."),
		occupied:     desc("occupied_slots", "Number of slots holding a bucket."),
		longestChain: desc("longest_chain", "Length of the longest bucket chain."),
		loadFactor:   desc("load_factor", "Entries per slot."),
	}
}

// Describe implements prometheus.Collector.
func (c *MapCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.occupied
	ch <- c.longestChain
	ch <- c.loadFactor
}

// Collect implements prometheus.Collector.
func (c *MapCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(st.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(st.Capacity))
	ch <- prometheus.MustNewConstMetric(c.occupied, prometheus.GaugeValue, float64(st.Occupied))
	ch <- prometheus.MustNewConstMetric(c.longestChain, prometheus.GaugeValue, float64(st.LongestChain))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, st.LoadFactor())
}
