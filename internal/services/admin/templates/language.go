package templates

import (
	"net/url"

	admini18n "github.com/aopps/admin-console/internal/services/admin/i18n"
	"golang.org/x/text/language"
)

// LanguageOption is one entry of the sidebar language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

var languageLabels = map[language.Tag]string{
	language.AmericanEnglish:     "English",
	language.BrazilianPortuguese: "Português",
}

// LanguageOptions lists supported languages, marking the active one.
// Labels are endonyms and are not translated.
func LanguageOptions(page PageContext) []LanguageOption {
	tags := admini18n.Supported()
	options := make([]LanguageOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  languageLabels[tag],
			URL:    LanguageURL(page, tag.String()),
			Active: tag.String() == page.Lang,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(admini18n.LangParam, tag)
	path := page.CurrentPath
	if path == "" {
		path = "/"
	}
	return path + "?" + values.Encode()
}
