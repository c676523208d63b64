package users

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingService struct {
	calls []string
}

func (s *recordingService) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	s.calls = append(s.calls, "page "+r.Method)
	w.WriteHeader(http.StatusOK)
}

func (s *recordingService) HandleUserDelete(w http.ResponseWriter, r *http.Request) {
	s.calls = append(s.calls, "delete "+r.Method)
	w.WriteHeader(http.StatusSeeOther)
}

func TestRegisterRoutesDispatch(t *testing.T) {
	t.Parallel()

	svc := &recordingService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	requests := []struct {
		method   string
		target   string
		wantCode int
	}{
		{method: http.MethodGet, target: "/users", wantCode: http.StatusOK},
		{method: http.MethodGet, target: "/users?page=2", wantCode: http.StatusOK},
		{method: http.MethodPost, target: "/users/delete", wantCode: http.StatusSeeOther},
		{method: http.MethodGet, target: "/users/42", wantCode: http.StatusNotFound},
	}
	for _, req := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(req.method, req.target, nil))
		if rec.Code != req.wantCode {
			t.Fatalf("%s %s status = %d, want %d", req.method, req.target, rec.Code, req.wantCode)
		}
	}

	want := []string{"page GET", "page GET", "delete POST"}
	if diff := cmp.Diff(want, svc.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterRoutesIgnoresNil(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, &recordingService{})
	mux := http.NewServeMux()
	RegisterRoutes(mux, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
