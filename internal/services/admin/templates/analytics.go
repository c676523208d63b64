package templates

import (
	"context"

	"github.com/a-h/templ"
)

// AnalyticsView provides data for the analytics page.
type AnalyticsView struct {
	CheapestPrice  string
	ExpensivePrice string
	PopularRoute   string
	Passengers     string
	AirlinesCount  string
	Notice         string
}

// AnalyticsPage renders the full analytics document.
func AnalyticsPage(view AnalyticsView, page PageContext) templ.Component {
	loc := page.Loc
	heading := T(loc, "analytics.title")
	return Layout(page, heading, component(func(_ context.Context, m *markup) {
		pageHeader(m, heading)
		if view.Notice != "" {
			m.notice("exclamation-triangle", view.Notice)
		}
		m.raw(`<div class="stats-grid">`)
		analyticsCard(m, "cheapestPrice", "arrow-down", "green", T(loc, "analytics.cheapest"), view.CheapestPrice, "")
		analyticsCard(m, "expensivePrice", "arrow-up", "orange", T(loc, "analytics.expensive"), view.ExpensivePrice, "")
		analyticsCard(m, "popularRoute", "fire", "purple", T(loc, "analytics.popular_route"), view.PopularRoute, view.Passengers)
		analyticsCard(m, "airlinesCount", "building", "blue", T(loc, "analytics.airlines"), view.AirlinesCount, "")
		m.raw(`</div>`)
	}))
}

func analyticsCard(m *markup, id string, iconName string, tone string, label string, value string, trend string) {
	m.raw(`<div class="stat-card"><div`)
	m.attr("class", "stat-icon "+tone)
	m.raw(">")
	m.icon(iconName)
	m.raw(`</div><div class="stat-details"><p>`)
	m.text(label)
	m.raw(`</p><h3`)
	m.attr("id", id)
	m.raw(">")
	m.text(value)
	m.raw(`</h3>`)
	if trend != "" {
		m.raw(`<span class="stat-trend">`)
		m.icon("users")
		m.raw(" ")
		m.text(trend)
		m.raw(`</span>`)
	}
	m.raw(`</div></div>`)
}
