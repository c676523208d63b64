// Package flash carries the one-time banner shown after a mutation redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"
)

// CookieName holds the pending notice between the redirect and the next page.
const CookieName = "aopps_flash"

// maxTextBytes keeps the cookie well under browser limits. Backend replies
// quoted in a failure notice are cut to fit.
const maxTextBytes = 512

// Kind selects the banner style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is one rendered, already localized banner.
type Notice struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Success builds a confirmation notice.
func Success(text string) Notice {
	return Notice{Kind: KindSuccess, Text: text}
}

// Failure builds an error notice.
func Failure(text string) Notice {
	return Notice{Kind: KindError, Text: text}
}

// Write stores notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending notice and expires the cookie. A cookie
// that does not decode is cleared all the same.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   isHTTPS(r),
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
	return decode(cookie.Value)
}

func decode(raw string) (Notice, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Notice{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(payload, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice Notice) (Notice, bool) {
	notice.Text = truncate(strings.TrimSpace(notice.Text))
	if notice.Text == "" {
		return Notice{}, false
	}
	switch notice.Kind {
	case KindSuccess, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}

func truncate(text string) string {
	if len(text) <= maxTextBytes {
		return text
	}
	cut := maxTextBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
