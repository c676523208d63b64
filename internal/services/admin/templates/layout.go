package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

const (
	htmxScriptURL   = "https://unpkg.com/htmx.org@2.0.4"
	iconStylesURL   = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
	adminStylesPath = routepath.StaticPrefix + "admin.css"
)

// NavItem is one sidebar entry.
type NavItem struct {
	ID    string
	Path  string
	Label string
	Icon  string
}

// NavItems lists the sidebar entries in display order.
func NavItems(loc Localizer) []NavItem {
	return []NavItem{
		{ID: "link-dashboard", Path: routepath.Root, Label: T(loc, "nav.dashboard"), Icon: "chart-line"},
		{ID: "link-flights", Path: routepath.Flights, Label: T(loc, "nav.flights"), Icon: "plane"},
		{ID: "link-airports", Path: routepath.Airports, Label: T(loc, "nav.airports"), Icon: "map-marker-alt"},
		{ID: "link-analytics", Path: routepath.Analytics, Label: T(loc, "nav.analytics"), Icon: "chart-pie"},
		{ID: "link-bookings", Path: routepath.Bookings, Label: T(loc, "nav.bookings"), Icon: "ticket-alt"},
		{ID: "link-users", Path: routepath.Users, Label: T(loc, "nav.users"), Icon: "users"},
	}
}

// ActiveNavPath returns the sidebar path owning currentPath, or "" when
// no entry matches.
func ActiveNavPath(currentPath string) string {
	if currentPath == routepath.Root {
		return routepath.Root
	}
	for _, section := range []string{routepath.Flights, routepath.Airports, routepath.Analytics, routepath.Bookings, routepath.Users} {
		if currentPath == section || strings.HasPrefix(currentPath, section+"/") {
			return section
		}
	}
	return ""
}

// PageTitle composes the document title.
func PageTitle(loc Localizer, heading string) string {
	brand := T(loc, "layout.title")
	if heading == "" || heading == brand {
		return brand
	}
	return heading + " | " + brand
}

// Layout renders the full document around content.
func Layout(page PageContext, heading string, content templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<!DOCTYPE html><html`)
		m.attr("lang", page.Lang)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		m.text(PageTitle(page.Loc, heading))
		m.raw(`</title>`)
		m.raw(`<link rel="stylesheet"`)
		m.url("href", iconStylesURL)
		m.raw(`><link rel="stylesheet"`)
		m.url("href", adminStylesPath)
		m.raw(`><script`)
		m.url("src", htmxScriptURL)
		m.raw(` defer></script></head><body><div class="admin-layout"><div id="sidebar-container">`)
		m.render(ctx, Sidebar(page))
		m.raw(`</div><main class="main-content">`)
		m.render(ctx, FlashBanner(page.Flash))
		m.render(ctx, content)
		m.raw(`</main></div></body></html>`)
	})
}

// Sidebar renders the navigation. The entry for the current page carries
// the active class.
func Sidebar(page PageContext) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := page.Loc
		active := ActiveNavPath(page.CurrentPath)
		m.raw(`<div class="sidebar"><div class="sidebar-header"><div class="sidebar-logo">`)
		m.icon("plane-departure")
		m.raw(`<div><h1>`)
		m.text(T(loc, "sidebar.brand"))
		m.raw(`</h1><p>`)
		m.text(T(loc, "sidebar.subtitle"))
		m.raw(`</p></div></div></div><ul class="sidebar-menu">`)
		for _, item := range NavItems(loc) {
			m.raw(`<li class="menu-item"><a`)
			m.url("href", item.Path)
			m.attr("id", item.ID)
			if item.Path == active {
				m.attr("class", "active")
				m.attr("aria-current", "page")
			}
			m.raw(">")
			m.icon(item.Icon)
			m.raw("<span>")
			m.text(item.Label)
			m.raw("</span></a></li>")
		}
		m.raw(`<li class="menu-item"><a`)
		m.url("href", siteURL(page))
		m.raw(">")
		m.icon("home")
		m.raw("<span>")
		m.text(T(loc, "nav.back_to_site"))
		m.raw(`</span></a></li></ul><div class="sidebar-languages">`)
		for _, option := range LanguageOptions(page) {
			m.raw("<a")
			m.url("href", option.URL)
			m.attr("hreflang", option.Tag)
			if option.Active {
				m.attr("class", "active")
			}
			m.raw(">")
			m.text(option.Label)
			m.raw("</a>")
		}
		m.raw(`</div></div>`)
	})
}

// FlashBanner renders the redirect message, if any.
func FlashBanner(flash Flash) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if flash.Error != "" {
			m.raw(`<div class="alert alert-error" role="alert" id="flash">`)
			m.text(flash.Error)
			m.raw(`</div>`)
		}
		if flash.Message != "" {
			m.raw(`<div class="alert alert-success" role="status" id="flash">`)
			m.text(flash.Message)
			m.raw(`</div>`)
		}
	})
}

// NotFoundPage renders the layout with nothing but a short notice.
func NotFoundPage(page PageContext) templ.Component {
	heading := T(page.Loc, "page.not_found")
	return Layout(page, heading, component(func(_ context.Context, m *markup) {
		m.notice("compass", heading)
	}))
}

func pageHeader(m *markup, heading string) {
	m.raw(`<div class="page-header"><h2>`)
	m.text(heading)
	m.raw(`</h2></div>`)
}

func siteURL(page PageContext) string {
	if strings.TrimSpace(page.SiteURL) == "" {
		return "/"
	}
	return page.SiteURL
}

// SiteLink joins a page name onto the public site URL.
func SiteLink(page PageContext, name string) string {
	base := siteURL(page)
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(name, "/")
}
