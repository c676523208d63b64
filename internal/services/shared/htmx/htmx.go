// Package htmx renders templ pages for full-page loads and HTMX swaps.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// RequestHeader marks requests issued by HTMX.
	RequestHeader = "HX-Request"
	// RedirectHeader asks HTMX to perform a full client-side navigation.
	RedirectHeader = "HX-Redirect"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// Redirect sends a post/redirect/get response. HTMX requests receive
// HX-Redirect with a 200 status; a 3xx would be followed by the XHR.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	if IsHTMXRequest(r) {
		w.Header().Set(RedirectHeader, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// RenderPage renders full for normal requests. For HTMX requests it renders
// fragment when set, otherwise the <main> content of full, prefixed with
// title when the body has none.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, title string) {
	RenderPageStatus(w, r, http.StatusOK, fragment, full, title)
}

// RenderPageStatus is RenderPage with an explicit response status.
func RenderPageStatus(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component, full templ.Component, title string) {
	if !IsHTMXRequest(r) {
		if full == nil {
			full = fragment
		}
		if full == nil {
			return
		}
		templ.Handler(full, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	target := fragment
	fromFull := false
	if target == nil {
		target = full
		fromFull = true
	}
	if target == nil {
		return
	}

	capture := newResponseBuffer()
	templ.Handler(target, templ.WithStatus(status)).ServeHTTP(capture, r)

	body := capture.body.Bytes()
	if fromFull {
		if mainContent, ok := extractMainContent(body); ok {
			body = mainContent
		}
	}
	body = prependTitleIfMissing(body, title)

	copyHeaders(w.Header(), capture.Header())
	if capture.statusCode != http.StatusOK {
		w.WriteHeader(capture.statusCode)
	}
	_, _ = w.Write(body)
}

// responseBuffer captures component rendering before it reaches the client.
type responseBuffer struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	headerWrote bool
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (w *responseBuffer) Header() http.Header {
	return w.header
}

func (w *responseBuffer) WriteHeader(status int) {
	if w.headerWrote {
		return
	}
	w.headerWrote = true
	w.statusCode = status
}

func (w *responseBuffer) Write(body []byte) (int, error) {
	return w.body.Write(body)
}

func prependTitleIfMissing(body []byte, title string) []byte {
	if strings.TrimSpace(title) == "" {
		return body
	}
	if bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	return append([]byte(title), body...)
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if strings.EqualFold(key, "Set-Cookie") {
			for _, value := range values {
				dst.Add(key, value)
			}
			continue
		}
		for _, value := range values {
			dst.Set(key, value)
		}
	}
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.IndexByte(body[start:], '>')
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.LastIndex(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
