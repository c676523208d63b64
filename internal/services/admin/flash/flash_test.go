package flash

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, notice Notice) (Notice, bool) {
	t.Helper()
	write := httptest.NewRecorder()
	Write(write, httptest.NewRequest(http.MethodPost, "/flights/add", nil), notice)

	req := httptest.NewRequest(http.MethodGet, "/flights", nil)
	for _, c := range write.Result().Cookies() {
		req.AddCookie(c)
	}
	return ReadAndClear(httptest.NewRecorder(), req)
}

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		notice Notice
		want   Notice
		wantOK bool
	}{
		{name: "success", notice: Success("Flight added successfully"), want: Success("Flight added successfully"), wantOK: true},
		{name: "error with quotes", notice: Failure(`Failed to add flight: "AI101" exists`), want: Failure(`Failed to add flight: "AI101" exists`), wantOK: true},
		{name: "blank text", notice: Success("  ")},
		{name: "unknown kind", notice: Notice{Kind: "warning", Text: "hm"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := roundTrip(t, tc.notice)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("round trip = %+v, %v; want %+v, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestWriteTruncatesLongText(t *testing.T) {
	t.Parallel()

	got, ok := roundTrip(t, Failure(strings.Repeat("é", maxTextBytes)))
	if !ok {
		t.Fatal("expected notice")
	}
	if len(got.Text) > maxTextBytes || !strings.HasPrefix(got.Text, "é") {
		t.Fatalf("text length = %d", len(got.Text))
	}
	if strings.ContainsRune(got.Text, '�') {
		t.Fatal("truncation split a rune")
	}
}

func TestReadAndClearExpiresCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		wantOK bool
	}{
		{name: "invalid base64", value: "not-base64!"},
		{name: "not json", value: "bm9wZQ"},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/flights", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tc.value})
		rec := httptest.NewRecorder()

		if _, ok := ReadAndClear(rec, req); ok != tc.wantOK {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.wantOK)
		}
		cookies := rec.Result().Cookies()
		if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
			t.Fatalf("%s: expected an expiring cookie, got %+v", tc.name, cookies)
		}
	}

	rec := httptest.NewRecorder()
	if _, ok := ReadAndClear(rec, httptest.NewRequest(http.MethodGet, "/flights", nil)); ok {
		t.Fatal("no cookie should read as no notice")
	}
	if got := rec.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want none without a pending notice", got)
	}
}

func TestWriteMarksCookieSecureOverHTTPS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*http.Request)
		want  bool
	}{
		{name: "plain", setup: func(*http.Request) {}},
		{name: "tls", setup: func(r *http.Request) { r.TLS = &tls.ConnectionState{} }, want: true},
		{name: "forwarded", setup: func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "HTTPS") }, want: true},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "/flights/add", nil)
		tc.setup(req)
		rec := httptest.NewRecorder()
		Write(rec, req, Success("ok"))

		cookies := rec.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("%s: cookies = %d, want 1", tc.name, len(cookies))
		}
		if cookies[0].Secure != tc.want || !cookies[0].HttpOnly {
			t.Fatalf("%s: cookie = %+v", tc.name, cookies[0])
		}
	}
}
