// Package prometheus provides metrics collection for the NucleoBond engine
// behind a small wrapper interface, so that domain code never imports the
// prometheus client directly and tests can run against the no-op collector.
package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector defines the interface for metrics registration.
type MetricsCollector interface {
	RegisterCounter(name, help string, labels ...string) CounterVec
	RegisterGauge(name, help string, labels ...string) GaugeVec
	RegisterHistogram(name, help string, buckets []float64, labels ...string) HistogramVec

	// Handler exposes the scrape endpoint for embedding hosts.  This
	// library starts no HTTP server of its own.
	Handler() http.Handler
}

// CounterVec wraps prometheus.CounterVec.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Counter wraps prometheus.Counter.
type Counter interface {
	Inc()
	Add(delta float64)
}

// GaugeVec wraps prometheus.GaugeVec.
type GaugeVec interface {
	WithLabelValues(lvs ...string) Gauge
}

// Gauge wraps prometheus.Gauge.
type Gauge interface {
	Set(value float64)
	Inc()
	Dec()
}

// HistogramVec wraps prometheus.HistogramVec.
type HistogramVec interface {
	WithLabelValues(lvs ...string) Histogram
}

// Histogram wraps prometheus.Histogram.
type Histogram interface {
	Observe(value float64)
}

// ─────────────────────────────────────────────────────────────────────────────
// prometheus-backed collector
// ─────────────────────────────────────────────────────────────────────────────

type prometheusCollector struct {
	namespace string
	registry  *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

// NewCollector constructs a registry-backed MetricsCollector.  Registering
// the same metric name twice returns the existing vector, so independent
// engine instances in one process can share a collector.
func NewCollector(namespace string) MetricsCollector {
	return &prometheusCollector{
		namespace:  namespace,
		registry:   prometheus.NewRegistry(),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

func (c *prometheusCollector) RegisterCounter(name, help string, labels ...string) CounterVec {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.counters[name]; ok {
		return counterVec{existing}
	}
	v := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      help,
	}, labels)
	c.registry.MustRegister(v)
	c.counters[name] = v
	return counterVec{v}
}

func (c *prometheusCollector) RegisterGauge(name, help string, labels ...string) GaugeVec {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.gauges[name]; ok {
		return gaugeVec{existing}
	}
	v := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      help,
	}, labels)
	c.registry.MustRegister(v)
	c.gauges[name] = v
	return gaugeVec{v}
}

func (c *prometheusCollector) RegisterHistogram(name, help string, buckets []float64, labels ...string) HistogramVec {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.histograms[name]; ok {
		return histogramVec{existing}
	}
	v := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)
	c.registry.MustRegister(v)
	c.histograms[name] = v
	return histogramVec{v}
}

func (c *prometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

type counterVec struct{ v *prometheus.CounterVec }

func (c counterVec) WithLabelValues(lvs ...string) Counter {
	return c.v.WithLabelValues(lvs...)
}

type gaugeVec struct{ v *prometheus.GaugeVec }

func (g gaugeVec) WithLabelValues(lvs ...string) Gauge {
	return g.v.WithLabelValues(lvs...)
}

type histogramVec struct{ v *prometheus.HistogramVec }

func (h histogramVec) WithLabelValues(lvs ...string) Histogram {
	return h.v.WithLabelValues(lvs...)
}

// ─────────────────────────────────────────────────────────────────────────────
// no-op collector
// ─────────────────────────────────────────────────────────────────────────────

type nopCollector struct{}

// NewNopCollector returns a MetricsCollector that records nothing.  It is the
// engine default when no metrics bundle is injected.
func NewNopCollector() MetricsCollector { return nopCollector{} }

type nopMetric struct{}

func (nopMetric) Inc()            {}
func (nopMetric) Add(float64)     {}
func (nopMetric) Set(float64)     {}
func (nopMetric) Dec()            {}
func (nopMetric) Observe(float64) {}

type nopVec struct{}

func (nopVec) WithLabelValues(...string) Counter { return nopMetric{} }

type nopGaugeVec struct{}

func (nopGaugeVec) WithLabelValues(...string) Gauge { return nopMetric{} }

type nopHistogramVec struct{}

func (nopHistogramVec) WithLabelValues(...string) Histogram { return nopMetric{} }

func (nopCollector) RegisterCounter(string, string, ...string) CounterVec { return nopVec{} }
func (nopCollector) RegisterGauge(string, string, ...string) GaugeVec    { return nopGaugeVec{} }
func (nopCollector) RegisterHistogram(string, string, []float64, ...string) HistogramVec {
	return nopHistogramVec{}
}
func (nopCollector) Handler() http.Handler { return http.NotFoundHandler() }
