package balance

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Monitor as Prometheus gauges:
//
//	<ns>_worker_work_units{worker="i"}
//	<ns>_work_units_total
//	<ns>_imbalance_factor
type Collector struct {
	m         *Monitor
	perWorker *prometheus.Desc
	total     *prometheus.Desc
	imbalance *prometheus.Desc
}

// NewCollector wraps m. constLabels may be nil.
func NewCollector(m *Monitor, namespace string, constLabels prometheus.Labels) *Collector {
	return &Collector{
		m: m,
		perWorker: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "worker_work_units"),
			"Work units recorded by each worker.",
			[]string{"worker"}, constLabels,
		),
		total: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "work_units_total"),
			"Work units recorded by all workers.",
			nil, constLabels,
		),
		imbalance: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "imbalance_factor"),
			"Maximum over mean per-worker work.",
			nil, constLabels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.perWorker
	ch <- c.total
	ch <- c.imbalance
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	r := c.m.Report()
	for i, w := range r.PerWorker {
		ch <- prometheus.MustNewConstMetric(c.perWorker, prometheus.GaugeValue, float64(w), strconv.Itoa(i))
	}
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(r.Total))
	ch <- prometheus.MustNewConstMetric(c.imbalance, prometheus.GaugeValue, r.Imbalance)
}
