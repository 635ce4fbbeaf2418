package stats

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes the counters of a BasicRegistry as one Prometheus
// counter family, <namespace>_stat_total, labelled by counter name.
// Values are exported as float64, which is exact only up to 2^53, and a
// counter that wraps past 2^64 back to 0 looks like a reset to Prometheus.
type Collector struct {
	r    *BasicRegistry
	desc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector reading from r.
func NewCollector(r *BasicRegistry, namespace string) *Collector {
	return &Collector{
		r: r,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "stat_total"),
			"Named statistics counters.",
			[]string{"name"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector. An uninitialized registry yields
// no metrics, so a scrape racing with Finalize does not panic.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	entries, ok := c.r.snapshot()
	if !ok {
		return
	}
	for _, e := range entries {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.CounterValue, float64(e.Value), e.Name)
	}
}
