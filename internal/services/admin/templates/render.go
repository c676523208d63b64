package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup streams escaped HTML into a writer, keeping the first error.
type markup struct {
	w   io.Writer
	err error
}

func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		fn(ctx, m)
		return m.err
	})
}

func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

func (m *markup) text(value string) {
	m.raw(templ.EscapeString(value))
}

func (m *markup) attr(name string, value string) {
	m.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a URL attribute, sanitized the way templ sanitizes hrefs.
func (m *markup) url(name string, value string) {
	m.attr(name, string(templ.URL(value)))
}

func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" ", name)
	}
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func (m *markup) icon(name string) {
	m.raw(`<i class="fas fa-`, templ.EscapeString(name), `"></i>`)
}

// textCell writes <td>value</td>.
func (m *markup) textCell(value string) {
	m.raw("<td>")
	m.text(value)
	m.raw("</td>")
}

func (m *markup) strongCell(value string) {
	m.raw("<td><strong>")
	m.text(value)
	m.raw("</strong></td>")
}

func (m *markup) codeCell(value string) {
	m.raw(`<td><code class="mono">`)
	m.text(value)
	m.raw("</code></td>")
}

func (m *markup) tableHead(loc Localizer, keys ...string) {
	m.raw(`<table class="data-table"><thead><tr>`)
	for _, key := range keys {
		m.raw("<th>")
		m.text(T(loc, key))
		m.raw("</th>")
	}
	m.raw("</tr></thead><tbody>")
}

func (m *markup) tableEnd() {
	m.raw("</tbody></table>")
}

// notice writes the centered placeholder used for empty and error states.
func (m *markup) notice(iconName string, message string) {
	m.raw(`<div class="loading">`)
	if iconName != "" {
		m.icon(iconName)
	}
	m.raw("<p>")
	m.text(message)
	m.raw("</p></div>")
}

// hiddenInput writes a hidden form field.
func (m *markup) hiddenInput(name string, value string) {
	m.raw(`<input type="hidden"`)
	m.attr("name", name)
	m.attr("value", value)
	m.raw(">")
}

// postButton writes a one-button form that posts a single hidden field.
// HTMX takes over the submit when loaded; the plain form is the fallback.
func (m *markup) postButton(action string, field string, value string, confirm string, class string, iconName string, label string, disabled bool) {
	m.raw(`<form method="post" class="inline-form"`)
	m.url("action", action)
	m.url("hx-post", action)
	if confirm != "" {
		m.attr("hx-confirm", confirm)
	}
	m.raw(">")
	m.hiddenInput(field, value)
	m.raw(`<button type="submit"`)
	m.attr("class", class)
	m.attr("title", label)
	m.attr("aria-label", label)
	m.flag("disabled", disabled)
	m.raw(">")
	m.icon(iconName)
	m.raw("</button></form>")
}
