package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{in: "/", want: "/"},
		{in: "//", want: "/"},
		{in: "/flights", want: "/flights"},
		{in: "/flights/", want: "/flights"},
		{in: "/airports/DEL/edit//", want: "/airports/DEL/edit"},
	}
	for _, tc := range tests {
		if got := Canonical(tc.in); got != tc.want {
			t.Fatalf("Canonical(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target  string
		wantLoc string
	}{
		{target: "/flights"},
		{target: "/"},
		{target: "/bookings/", wantLoc: "/bookings"},
		{target: "/flights/?page=2&search=del", wantLoc: "/flights?page=2&search=del"},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		redirected := RedirectTrailingSlash(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))

		if redirected != (tc.wantLoc != "") {
			t.Fatalf("%s: redirected = %v", tc.target, redirected)
		}
		if !redirected {
			continue
		}
		if rec.Code != http.StatusMovedPermanently {
			t.Fatalf("%s: status = %d, want 301", tc.target, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
			t.Fatalf("%s: location = %q, want %q", tc.target, loc, tc.wantLoc)
		}
	}

	if RedirectTrailingSlash(nil, nil) {
		t.Fatal("nil request must not redirect")
	}
}

func TestRedirectPermanentKeepsExplicitQuery(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	RedirectPermanent(rec, httptest.NewRequest(http.MethodGet, "/admin-flights.html?page=3", nil), "/flights?page=1")

	if loc := rec.Header().Get("Location"); loc != "/flights?page=1" {
		t.Fatalf("location = %q, want %q", loc, "/flights?page=1")
	}
}
