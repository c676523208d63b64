// Package i18n resolves the operator's language for admin console pages.
package i18n

import (
	"net/http"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	// Registers the embedded translations with message.DefaultCatalog.
	_ "github.com/aopps/admin-console/internal/platform/i18n/catalog"
)

const (
	// LangParam selects a language for one request and persists it.
	LangParam = "lang"
	// LangCookieName stores the operator's language preference.
	LangCookieName = "aopps_lang"

	cookieMaxAge = 365 * 24 * 60 * 60
)

// English is first: the matcher falls back to it.
var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the console languages in display order.
func Supported() []language.Tag {
	return slices.Clone(supportedTags)
}

// Default is the language used when nothing on the request matches.
func Default() language.Tag {
	return supportedTags[0]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the request language from the lang query param, then the
// language cookie, then Accept-Language. The bool is true only when the
// query param matched and should be written back as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := match(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := match(cookie.Value); ok {
			return tag, false
		}
	}
	if tag, ok := matchAccept(r.Header.Get("Accept-Language")); ok {
		return tag, false
	}
	return Default(), false
}

// SetLanguageCookie remembers tag for a year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

func match(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	return best(parsed)
}

func matchAccept(header string) (language.Tag, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return language.Tag{}, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return language.Tag{}, false
	}
	return best(tags...)
}

func best(tags ...language.Tag) (language.Tag, bool) {
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}
