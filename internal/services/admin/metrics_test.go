package admin

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read scrape: %v", err)
	}
	return string(body)
}

func TestMetricsExposeObservations(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveCall("flights", "ok", 120*time.Millisecond)
	m.ObserveCall("flights", "ok", 80*time.Millisecond)
	m.ObserveCall("stats", "error", time.Second)
	m.ObserveMutation(actionFlightDelete, "rejected")

	body := scrape(t, m)
	for _, want := range []string{
		`aopps_admin_backend_requests_total{endpoint="flights",outcome="ok"} 2`,
		`aopps_admin_backend_requests_total{endpoint="stats",outcome="error"} 1`,
		`aopps_admin_backend_request_duration_seconds_count{endpoint="flights"} 2`,
		`aopps_admin_mutations_total{action="flight.delete",result="rejected"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("scrape missing %q", want)
		}
	}
}

func TestMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveCall("flights", "ok", time.Millisecond)
	m.ObserveMutation(actionFlightAdd, "success")
	if m.Handler() != nil {
		t.Fatal("expected nil handler")
	}
}

func TestHandlerCountsMutations(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	h := NewHandler(HandlerConfig{API: &fakeFlightAPI{}, Metrics: metrics})
	req := postRequest("/bookings/cancel", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	want := `aopps_admin_mutations_total{action="booking.cancel",result="simulated"} 1`
	if body := scrape(t, metrics); !strings.Contains(body, want) {
		t.Fatalf("scrape missing %q", want)
	}
}
