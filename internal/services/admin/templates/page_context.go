package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer is the part of *message.Printer the components need.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key. Without a localizer the key itself is used as the
// format string; non-string keys yield "".
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// SiteURL is the public booking site, used by "Back to Site" and ticket links.
	SiteURL string
	Flash   Flash
}

// Flash is the one-shot banner carried by a redirect.
type Flash struct {
	Message string
	Error   string
}

// Empty reports whether there is nothing to show.
func (f Flash) Empty() bool {
	return f.Message == "" && f.Error == ""
}
