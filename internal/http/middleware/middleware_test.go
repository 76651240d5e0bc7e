package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yungbote/dinocatalog-backend/internal/observability"
	"github.com/yungbote/dinocatalog-backend/internal/platform/ctxutil"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var (
		seen ctxutil.Request
		ok   bool
	)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) {
		seen, ok = ctxutil.RequestFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if !ok || seen.ID != "req-123" || seen.TraceID == "" || seen.Sampled {
		t.Fatalf("trace data: %+v", seen)
	}
	if rec.Header().Get(headerRequestID) != "req-123" {
		t.Fatalf("request id not echoed: %q", rec.Header().Get(headerRequestID))
	}
	if rec.Header().Get(headerTraceID) != seen.TraceID {
		t.Fatalf("trace id header mismatch")
	}
}

func TestAttachTraceContextReplacesBadClientIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, strings.Repeat("a", maxClientIDLen+1))
	req.Header.Set(headerTraceID, "has space")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(headerRequestID); got == "" || len(got) > maxClientIDLen {
		t.Fatalf("request id: %q", got)
	}
	if got := rec.Header().Get(headerTraceID); got == "" || got == "has space" {
		t.Fatalf("trace id: %q", got)
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.NewMetrics()

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/dinosaurs/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dinosaurs/"+id, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	want := `dinocatalog_http_requests_total{method="GET",route="/dinosaurs/:id",status="404"} 3`
	if !strings.Contains(body, want) {
		t.Fatalf("exposition missing %q", want)
	}
	if n := promtest.CollectAndCount(m.Registry(), "dinocatalog_http_requests_total"); n != 1 {
		t.Fatalf("request series: got=%d want=1", n)
	}
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery(logger.Nop()), RequestLogger(logger.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"internal_error"`) {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestMetricsCollapsesUnmatchedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.NewMetrics()

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/dinosaurs", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, p := range []string{"/nope", "/also/nope"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `dinocatalog_http_requests_total{method="GET",route="unmatched",status="404"} 2`
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("exposition missing %q", want)
	}
}
