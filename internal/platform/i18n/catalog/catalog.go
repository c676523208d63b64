// Package catalog loads translated console messages and registers them with
// golang.org/x/text/message.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale; every key must exist here.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Bundle holds the messages of every locale.
type Bundle struct {
	locales map[string]map[string]string
}

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		locale, messages, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if dir := path.Base(path.Dir(p)); locale != dir {
			return nil, fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, dir)
		}
		if err := bundle.add(locale, messages); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}

	base, ok := bundle.locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for locale, messages := range bundle.locales {
		for key := range messages {
			if _, ok := base[key]; !ok {
				return nil, fmt.Errorf("locale %s: key %q missing from %s", locale, key, BaseLocale)
			}
		}
	}
	return bundle, nil
}

func (b *Bundle) add(locale string, messages map[string]string) error {
	existing, ok := b.locales[locale]
	if !ok {
		existing = make(map[string]string, len(messages))
		b.locales[locale] = existing
	}
	for key, value := range messages {
		if _, dup := existing[key]; dup {
			return fmt.Errorf("duplicate key %q in locale %q", key, locale)
		}
		existing[key] = value
	}
	return nil
}

// Register registers every locale with x/text/message, including the bare
// language tag so "pt" resolves to "pt-BR".
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		for key, value := range b.locales[locale] {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, value); err != nil {
					return fmt.Errorf("register %s %q: %w", registerTag, key, err)
				}
			}
		}
	}
	return nil
}

// Locales returns the loaded locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	if value, ok := b.locales[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// Keys returns the sorted base-locale keys.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales[BaseLocale]))
	for key := range b.locales[BaseLocale] {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

// catalogFile is the on-disk shape of one locale file:
//
//	locale: "en-US"
//	messages:
//	  "key": "value"
type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// parse decodes one catalog file. Duplicate keys are rejected by the decoder.
func parse(data []byte) (string, map[string]string, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", nil, err
	}
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return "", nil, fmt.Errorf("missing locale")
	}
	if len(file.Messages) == 0 {
		return "", nil, fmt.Errorf("missing messages")
	}
	for key := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return "", nil, fmt.Errorf("message key cannot be blank")
		}
	}
	return locale, file.Messages, nil
}
