package bookings

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleBookingsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "bookings_page"
}

func (f *fakeService) HandleBookingCancel(http.ResponseWriter, *http.Request) {
	f.lastCall = "booking_cancel"
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path     string
		method   string
		wantCall string
	}{
		{path: "/bookings", method: http.MethodGet, wantCall: "bookings_page"},
		{path: "/bookings/cancel", method: http.MethodPost, wantCall: "booking_cancel"},
	}
	for _, tc := range tests {
		svc.lastCall = ""
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if svc.lastCall != tc.wantCall {
			t.Fatalf("%s %s: lastCall = %q, want %q", tc.method, tc.path, svc.lastCall, tc.wantCall)
		}
	}
}
