package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PromMetrics struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	samples  *prometheus.HistogramVec
}

func New() *PromMetrics {
	reg := prometheus.NewRegistry()
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kernelbench_runs_total",
		Help: "Scenario invocations by terminal result.",
	}, []string{"scenario", "backend", "result"})
	samples := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kernelbench_sample_microseconds",
		Help:    "Per-iteration elapsed time samples.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 20),
	}, []string{"scenario", "backend"})
	reg.MustRegister(runs, samples)
	return &PromMetrics{registry: reg, runs: runs, samples: samples}
}

func (m *PromMetrics) ObserveRun(scenario, backend, result string) {
	m.runs.WithLabelValues(scenario, backend, result).Inc()
}

func (m *PromMetrics) ObserveSample(scenario, backend string, micros float64) {
	m.samples.WithLabelValues(scenario, backend).Observe(micros)
}

// Handler exposes the registry for scrape-style inspection of a long
// benchmark session.
func (m *PromMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
