package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

// newTestMetrics swaps in a fresh default registry so each test can
// call metrics.New without duplicate registration panics.
func newTestMetrics() *metrics.Metrics {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	return metrics.New()
}

func TestMetricsMiddleware_RecordsRoutePattern(t *testing.T) {
	m := newTestMetrics()
	mw := NewMetricsMiddleware(m)

	handlerCalled := false
	router := chi.NewRouter()
	router.Use(mw.Wrap)
	router.Get("/api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		if got := testutil.ToFloat64(m.HTTPInFlight); got != 1 {
			t.Errorf("expected in-flight gauge to be 1 during request, got %v", got)
		}
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/acc-123", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if !handlerCalled {
		t.Fatalf("next handler was not invoked")
	}

	if got := testutil.ToFloat64(m.HTTPInFlight); got != 0 {
		t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
	}

	counter := m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/accounts/{id}", strconv.Itoa(http.StatusTeapot))
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected counter to be 1, got %v", got)
	}
}

func TestMetricsMiddleware_LabelsUnroutedRequests(t *testing.T) {
	m := newTestMetrics()
	mw := NewMetricsMiddleware(m)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/whatever/raw/path", nil)
	rr := httptest.NewRecorder()
	mw.Wrap(next).ServeHTTP(rr, req)

	counter := m.HTTPRequests.WithLabelValues(http.MethodPost, "unrouted", strconv.Itoa(http.StatusNoContent))
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected unrouted counter to be 1, got %v", got)
	}
}

func TestMetricsMiddleware_DefaultsTo200WhenHandlerWritesBody(t *testing.T) {
	m := newTestMetrics()
	mw := NewMetricsMiddleware(m)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	mw.Wrap(next).ServeHTTP(rr, req)

	counter := m.HTTPRequests.WithLabelValues(http.MethodGet, "unrouted", "200")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected implicit 200 to be recorded, got %v", got)
	}
}
