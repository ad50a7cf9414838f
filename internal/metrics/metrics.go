// Package metrics exposes Prometheus counters for navigation and view
// loading. All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "visgallery"

// Metrics holds the collectors of one application instance.
type Metrics struct {
	registry    *prometheus.Registry
	navigations *prometheus.CounterVec
	viewLoads   *prometheus.CounterVec
	loadSeconds *prometheus.HistogramVec
	stale       prometheus.Counter
	catalog     *prometheus.GaugeVec
}

// New creates an isolated registry so that several apps (and tests) can
// coexist in one process.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Navigations by resolution kind and channel.",
		}, []string{"kind", "channel"}),
		viewLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_loads_total",
			Help:      "View module loads by slug and result.",
		}, []string{"slug", "result"}),
		loadSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_load_duration_seconds",
			Help:      "Time spent waiting for a view module.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"slug"}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_loads_discarded_total",
			Help:      "View loads that finished after a newer navigation and were dropped.",
		}),
		catalog: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_entries",
			Help:      "Catalog size by hosting.",
		}, []string{"hosting"}),
	}
	m.registry.MustRegister(
		m.navigations, m.viewLoads, m.loadSeconds, m.stale, m.catalog,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Navigation counts one resolved navigation.
func (m *Metrics) Navigation(kind, channel string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(kind, channel).Inc()
}

// ViewLoad records the outcome and latency of one view load.
func (m *Metrics) ViewLoad(slug string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.viewLoads.WithLabelValues(slug, result).Inc()
	m.loadSeconds.WithLabelValues(slug).Observe(d.Seconds())
}

// StaleDiscarded counts a load result dropped by last-writer-wins.
func (m *Metrics) StaleDiscarded() {
	if m == nil {
		return
	}
	m.stale.Inc()
}

// Catalog publishes the catalog size.
func (m *Metrics) Catalog(routed, external int) {
	if m == nil {
		return
	}
	m.catalog.WithLabelValues("routed").Set(float64(routed))
	m.catalog.WithLabelValues("external").Set(float64(external))
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
