package admin

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{DBPath: filepath.Join(t.TempDir(), "admin.db")}); err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestNewServerRejectsInvalidAPIURL(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{
		HTTPAddr: "127.0.0.1:0",
		APIURL:   "ftp://flights.example",
		DBPath:   filepath.Join(t.TempDir(), "admin.db"),
		Logger:   zap.NewNop(),
	})
	if err == nil {
		t.Fatal("expected error for non-http api url")
	}
}

func TestServerHandlerServesConsole(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/admin/stats":
			_, _ = io.WriteString(w, `{"total_flights":3,"total_airports":2,"popular_route":"N/A"}`)
		case "/api/flights":
			_, _ = io.WriteString(w, `{"flights":[],"totalPages":1}`)
		default:
			_, _ = io.WriteString(w, `[]`)
		}
	}))
	t.Cleanup(backend.Close)

	dbPath := filepath.Join(t.TempDir(), "nested", "admin.db")
	server, err := NewServer(context.Background(), Config{
		HTTPAddr:   "127.0.0.1:0",
		APIURL:     backend.URL,
		DBPath:     dbPath,
		APITimeout: 2 * time.Second,
		Logger:     zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(server.Close)

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("audit database not created: %v", err)
	}

	tests := []struct {
		path     string
		wantBody string
	}{
		{path: "/healthz", wantBody: "ok"},
		{path: "/metrics", wantBody: `aopps_admin_backend_requests_total{endpoint="stats",outcome="ok"}`},
		{path: "/static/admin.css", wantBody: "{"},
		{path: "/flights", wantBody: "allFlightsTable"},
	}
	// The dashboard request populates the backend metrics scraped below.
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", tc.path, rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), tc.wantBody) {
			t.Fatalf("%s body missing %q", tc.path, tc.wantBody)
		}
	}
}

func TestServerListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "admin.db"),
		Logger:   zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServerNilSafe(t *testing.T) {
	t.Parallel()

	var s *Server
	if s.Handler() != nil {
		t.Fatal("expected nil handler")
	}
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	s.Close()
}
