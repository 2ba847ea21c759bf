package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements the Metrics interface using Prometheus as the
// backend. Each instance carries its own registry, so independent instances
// never collide on metric names.
//
// All metrics are registered once at startup. The record methods only read
// the maps, so they take no lock.
type PrometheusMetrics struct {
	registry      *prometheus.Registry
	counters      map[string]prometheus.Counter
	counterVecs   map[string]*prometheus.CounterVec
	gauges        map[string]prometheus.Gauge
	gaugeVecs     map[string]*prometheus.GaugeVec
	histograms    map[string]prometheus.Histogram
	histogramVecs map[string]*prometheus.HistogramVec
	customBuckets map[string][]float64
}

// NewPrometheusMetrics creates and initializes a new instance of PrometheusMetrics
// with a fresh registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		registry:      prometheus.NewRegistry(),
		counters:      make(map[string]prometheus.Counter),
		counterVecs:   make(map[string]*prometheus.CounterVec),
		gauges:        make(map[string]prometheus.Gauge),
		gaugeVecs:     make(map[string]*prometheus.GaugeVec),
		histograms:    make(map[string]prometheus.Histogram),
		histogramVecs: make(map[string]*prometheus.HistogramVec),
		customBuckets: make(map[string][]float64),
	}
}

// SetCustomBuckets sets custom bucket thresholds for a histogram. It must be
// called before the histogram is registered; otherwise the default buckets
// are used.
func (p *PrometheusMetrics) SetCustomBuckets(name string, buckets []float64) {
	p.customBuckets[name] = buckets
}

// Register creates and registers a new metric in the registry based on the
// provided type. Supported metric types are 'Counter', 'Gauge' and 'Histogram'.
// For 'Histogram' types, custom buckets are used if they have been set.
func (p *PrometheusMetrics) Register(name, metricType, help string) {
	switch metricType {
	case "Counter":
		counter := prometheus.NewCounter(prometheus.CounterOpts{
			Name: name,
			Help: help,
		})
		p.registry.MustRegister(counter)
		p.counters[name] = counter

	case "Gauge":
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		})
		p.registry.MustRegister(gauge)
		p.gauges[name] = gauge

	case "Histogram":
		buckets, ok := p.customBuckets[name]
		if !ok {
			buckets = prometheus.DefBuckets
		}
		histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		})
		p.registry.MustRegister(histogram)
		p.histograms[name] = histogram

	default:
		log.Printf("Error: Attempted to register unknown metric type '%s' with name '%s'", metricType, name)
	}
}

// Record updates the value of a metric without labels. It performs 'Add' for
// counters, 'Set' for gauges and 'Observe' for histograms. Unknown names are
// ignored.
func (p *PrometheusMetrics) Record(name string, value float64) {
	if counter, ok := p.counters[name]; ok {
		counter.Add(value)
		return
	}

	if gauge, ok := p.gauges[name]; ok {
		gauge.Set(value)
		return
	}

	if histogram, ok := p.histograms[name]; ok {
		histogram.Observe(value)
		return
	}
}

// RegisterWithLabels creates and registers a new labeled metric. It is the
// labeled counterpart of Register; 'labels' lists the label keys.
func (p *PrometheusMetrics) RegisterWithLabels(name, metricType, help string, labels []string) {
	switch metricType {
	case "Counter":
		counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels)
		p.registry.MustRegister(counterVec)
		p.counterVecs[name] = counterVec

	case "Gauge":
		gaugeVec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}, labels)
		p.registry.MustRegister(gaugeVec)
		p.gaugeVecs[name] = gaugeVec

	case "Histogram":
		buckets, ok := p.customBuckets[name]
		if !ok {
			buckets = prometheus.DefBuckets
		}
		histogramVec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		}, labels)
		p.registry.MustRegister(histogramVec)
		p.histogramVecs[name] = histogramVec

	default:
		log.Printf("Error: Attempted to register unknown metric type '%s' with name '%s'", metricType, name)
	}
}

// RecordWithLabels updates the value of a labeled metric. The labelValues
// must match the order and number of labels defined during registration.
func (p *PrometheusMetrics) RecordWithLabels(name string, value float64, labelValues ...string) {
	if counterVec, ok := p.counterVecs[name]; ok {
		counterVec.WithLabelValues(labelValues...).Add(value)
		return
	}

	if gaugeVec, ok := p.gaugeVecs[name]; ok {
		gaugeVec.WithLabelValues(labelValues...).Set(value)
		return
	}

	if histogramVec, ok := p.histogramVecs[name]; ok {
		histogramVec.WithLabelValues(labelValues...).Observe(value)
		return
	}
}

// Handler returns the HTTP handler that exposes the collected metrics.
func (p *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// StartMetricsServer starts an HTTP server on the specified port exposing the
// collected metrics at /metrics. It blocks, so it is typically run in its own
// goroutine.
func (p *PrometheusMetrics) StartMetricsServer(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())
	return http.ListenAndServe(":"+port, mux)
}
