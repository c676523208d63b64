package airports

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastCode string
}

func (f *fakeService) HandleAirportsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "airports_page"
}

func (f *fakeService) HandleAirportAdd(http.ResponseWriter, *http.Request) {
	f.lastCall = "airport_add"
}

func (f *fakeService) HandleAirportUpdate(http.ResponseWriter, *http.Request) {
	f.lastCall = "airport_update"
}

func (f *fakeService) HandleAirportDelete(http.ResponseWriter, *http.Request) {
	f.lastCall = "airport_delete"
}

func (f *fakeService) HandleAirportEdit(_ http.ResponseWriter, _ *http.Request, code string) {
	f.lastCall = "airport_edit"
	f.lastCode = code
}

func (f *fakeService) HandleNotFound(w http.ResponseWriter, _ *http.Request) {
	f.lastCall = "not_found"
	w.WriteHeader(http.StatusNotFound)
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path     string
		method   string
		wantCode int
		wantCall string
		wantAirp string
	}{
		{path: "/airports", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "airports_page"},
		{path: "/airports/add", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "airport_add"},
		{path: "/airports/update", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "airport_update"},
		{path: "/airports/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "airport_delete"},
		{path: "/airports/DEL/edit", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "airport_edit", wantAirp: "DEL"},
		{path: "/airports/DEL", method: http.MethodGet, wantCode: http.StatusNotFound, wantCall: "not_found"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastCode = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastCode != tc.wantAirp {
				t.Fatalf("lastCode = %q, want %q", svc.lastCode, tc.wantAirp)
			}
		})
	}
}

func TestHandleAirportPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/airports/DEL/edit/", nil)
	rec := httptest.NewRecorder()
	HandleAirportPath(rec, req, &fakeService{})

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if location := rec.Header().Get("Location"); location != "/airports/DEL/edit" {
		t.Fatalf("location = %q", location)
	}
}
