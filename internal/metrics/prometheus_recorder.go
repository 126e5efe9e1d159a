package metrics

import (
	"sync"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "collections"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once        sync.Once
	probeLength *prom.HistogramVec
	expansions  prom.Counter
	capacity    prom.Gauge
	relocations prom.Histogram
}

// NewPrometheusRecorder constructs and registers the set metrics on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.probeLength = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "set",
			Name:      "probe_length",
			Help:      "Slots inspected per set operation",
			Buckets:   prom.ExponentialBuckets(1, 2, 8),
		}, []string{"op"})
		pr.expansions = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "set",
			Name:      "expansions_total",
			Help:      "Number of table doublings",
		})
		pr.capacity = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "set",
			Name:      "capacity",
			Help:      "Table capacity after the most recent expansion",
		})
		pr.relocations = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "set",
			Name:      "relocations",
			Help:      "Entries shifted back per delete",
			Buckets:   prom.LinearBuckets(0, 1, 8),
		})
		reg.MustRegister(pr.probeLength, pr.expansions, pr.capacity, pr.relocations)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveProbes(op Operation, n int) {
	if p == nil || p.probeLength == nil {
		return
	}
	p.probeLength.WithLabelValues(string(op)).Observe(float64(n))
}

func (p *PrometheusRecorder) IncExpansion(_, to int) {
	if p == nil || p.expansions == nil {
		return
	}
	p.expansions.Inc()
	p.capacity.Set(float64(to))
}

func (p *PrometheusRecorder) ObserveRelocations(n int) {
	if p == nil || p.relocations == nil {
		return
	}
	p.relocations.Observe(float64(n))
}
