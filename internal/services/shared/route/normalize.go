// Package route holds redirects shared by admin route modules.
package route

import (
	"net/http"
	"strings"
)

// Canonical strips trailing slashes from path; the root stays "/".
func Canonical(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// RedirectTrailingSlash sends a 301 to the canonical path when the request
// path ends in "/". It reports whether a redirect was written.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}
	canonical := Canonical(r.URL.Path)
	if canonical == r.URL.Path {
		return false
	}
	RedirectPermanent(w, r, canonical)
	return true
}

// RedirectPermanent answers with 301 to target. The request query is carried
// over unless target already has one.
func RedirectPermanent(w http.ResponseWriter, r *http.Request, target string) {
	if r != nil && r.URL != nil && r.URL.RawQuery != "" && !strings.Contains(target, "?") {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}
