package legacy

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegisterRoutesRedirectsLegacyPages(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	RegisterRoutes(mux)

	tests := []struct {
		path    string
		wantLoc string
	}{
		{path: "/admin.html", wantLoc: "/"},
		{path: "/admin-flights.html", wantLoc: "/flights"},
		{path: "/admin-flights.html?page=2&search=DEL", wantLoc: "/flights?page=2&search=DEL"},
		{path: "/admin-airports.html", wantLoc: "/airports"},
		{path: "/admin-analytics.html", wantLoc: "/analytics"},
		{path: "/admin-bookings.html", wantLoc: "/bookings"},
		{path: "/admin-users.html", wantLoc: "/users"},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

		if rec.Code != http.StatusMovedPermanently {
			t.Fatalf("%s: status = %d, want %d", tc.path, rec.Code, http.StatusMovedPermanently)
		}
		if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
			t.Fatalf("%s: location = %q, want %q", tc.path, loc, tc.wantLoc)
		}
	}
}
