// Package metrics provides an abstract interface for recording and
// managing operational metrics within an application. It offers a
// unified API for common metric operations, such as registering and
// recording standard and labeled metrics.
//
// The Metrics interface defined in this package serves as the foundation
// for implementing specific metrics systems, such as a Prometheus-based
// metrics system.
//
// Usage Example:
//
//	m := metrics.NewPrometheusMetrics()
//	m.Register("conversion_requests_total", "Counter", "Total number of conversion requests")
//	m.Record("conversion_requests_total", 1)
//	m.RegisterWithLabels("conversions_total", "Counter", "Conversions by language, mode and outcome", []string{"lang", "mode", "status"})
//	m.RecordWithLabels("conversions_total", 1, "en", "words", "ok")
package metrics

type Metrics interface {
	Register(name, metricType, help string)
	Record(name string, value float64)
	RegisterWithLabels(name, metricType, help string, labels []string)
	RecordWithLabels(name string, value float64, labelValues ...string)
}
