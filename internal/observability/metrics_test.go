package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserveRequest(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest("GET", "/dinosaurs", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/dinosaurs", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "/dinosaurs/:id", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/dinosaurs", "200")); got != 2 {
		t.Fatalf("requests /dinosaurs 200: got=%v want=2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/dinosaurs/:id", "404")); got != 1 {
		t.Fatalf("requests /dinosaurs/:id 404: got=%v want=1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics handler status=%d", rec.Code)
	}
	if !strings.Contains(string(body), "dinocatalog_http_request_duration_seconds_bucket") {
		t.Fatalf("histogram missing from exposition")
	}
}

func TestInflightGauge(t *testing.T) {
	m := NewMetrics()
	first := m.TrackInflight()
	_ = m.TrackInflight()
	first()
	if got := testutil.ToFloat64(m.inflight); got != 1 {
		t.Fatalf("inflight: got=%v want=1", got)
	}
}

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders(" api-key = abc , bad, =x, team=dino ")
	if len(got) != 2 || got["api-key"] != "abc" || got["team"] != "dino" {
		t.Fatalf("ParseHeaders: %v", got)
	}
	if ParseHeaders("") != nil {
		t.Fatalf("ParseHeaders(\"\"): want nil")
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown, err := InitOTel(t.Context(), nil, OtelConfig{Enabled: false})
	if err != nil {
		t.Fatalf("InitOTel: %v", err)
	}
	if err := shutdown(t.Context()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
