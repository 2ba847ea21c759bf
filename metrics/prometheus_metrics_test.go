package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegisterWithLabels(t *testing.T) {
	metrics := NewPrometheusMetrics()

	metrics.RegisterWithLabels("conversions_total", "Counter", "Conversions by language, mode and outcome", []string{"lang", "mode", "status"})

	if _, ok := metrics.counterVecs["conversions_total"]; !ok {
		t.Errorf("Metric 'conversions_total' was not registered")
	}
}

func TestRecordWithLabels(t *testing.T) {
	metrics := NewPrometheusMetrics()

	metrics.RegisterWithLabels("conversions_total", "Counter", "Conversions by language, mode and outcome", []string{"lang", "mode", "status"})
	metrics.RecordWithLabels("conversions_total", 1.0, "en", "words", "ok")

	families, err := metrics.registry.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) != 1 || families[0].GetName() != "conversions_total" {
		t.Errorf("Expected gathered family 'conversions_total', got %v", families)
	}
}

func TestRegisterAndRecord(t *testing.T) {
	metrics := NewPrometheusMetrics()

	metrics.Register("conversion_requests_total", "Counter", "Total number of conversion requests")
	metrics.Record("conversion_requests_total", 1)
	metrics.Record("conversion_requests_total", 2)

	if _, ok := metrics.counters["conversion_requests_total"]; !ok {
		t.Errorf("Metric 'conversion_requests_total' was not registered")
	}
}

func TestHistogramCustomBuckets(t *testing.T) {
	metrics := NewPrometheusMetrics()

	metrics.SetCustomBuckets("conversion_duration_seconds", []float64{0.001, 0.01, 0.1, 1})
	metrics.Register("conversion_duration_seconds", "Histogram", "Conversion handler latency")
	metrics.Record("conversion_duration_seconds", 0.005)

	if _, ok := metrics.histograms["conversion_duration_seconds"]; !ok {
		t.Errorf("Metric 'conversion_duration_seconds' was not registered")
	}
}

func TestSeparateRegistries(t *testing.T) {
	// Two instances may register the same metric name without panicking.
	first := NewPrometheusMetrics()
	second := NewPrometheusMetrics()

	first.Register("conversion_requests_total", "Counter", "Total number of conversion requests")
	second.Register("conversion_requests_total", "Counter", "Total number of conversion requests")
}

func TestHandler(t *testing.T) {
	metrics := NewPrometheusMetrics()
	metrics.Register("conversion_requests_total", "Counter", "Total number of conversion requests")
	metrics.Record("conversion_requests_total", 3)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "conversion_requests_total 3") {
		t.Errorf("Expected body to contain 'conversion_requests_total 3', got %s", w.Body.String())
	}
}
