package templates

import (
	"context"

	"github.com/a-h/templ"
)

// DashboardStats holds the formatted stat card values.
type DashboardStats struct {
	TotalFlights  string
	TotalAirports string
	ActiveRoutes  string
	AvgPrice      string
	TotalUsers    string
	TotalRevenue  string
}

// ActivityItem is one booking in the activity feed.
type ActivityItem struct {
	Confirmed bool
	Heading   string
	Detail    string
	Meta      string
}

// AuditRow is one admin action shown on the dashboard.
type AuditRow struct {
	When    string
	Action  string
	Target  string
	Outcome string
}

// DashboardView provides data for the dashboard page.
type DashboardView struct {
	Stats         DashboardStats
	RecentFlights []FlightRow
	Activity      []ActivityItem
	Audit         []AuditRow
	// Notice reports a backend failure; the affected sections stay empty.
	Notice string
}

// DashboardPage renders the full dashboard document.
func DashboardPage(view DashboardView, page PageContext) templ.Component {
	loc := page.Loc
	heading := T(loc, "dashboard.title")
	return Layout(page, heading, component(func(ctx context.Context, m *markup) {
		pageHeader(m, heading)
		if view.Notice != "" {
			m.notice("exclamation-triangle", view.Notice)
		}
		m.raw(`<div class="stats-grid">`)
		statCard(m, "totalFlights", "plane", "blue", T(loc, "dashboard.stat.total_flights"), view.Stats.TotalFlights)
		statCard(m, "totalAirports", "map-marker-alt", "green", T(loc, "dashboard.stat.total_airports"), view.Stats.TotalAirports)
		statCard(m, "activeRoutes", "route", "orange", T(loc, "dashboard.stat.active_routes"), view.Stats.ActiveRoutes)
		statCard(m, "avgPrice", "rupee-sign", "purple", T(loc, "dashboard.stat.avg_price"), view.Stats.AvgPrice)
		statCard(m, "totalUsers", "users", "blue", T(loc, "dashboard.stat.total_users"), view.Stats.TotalUsers)
		statCard(m, "totalRevenue", "wallet", "green", T(loc, "dashboard.stat.total_revenue"), view.Stats.TotalRevenue)
		m.raw(`</div><div class="dashboard-grid"><section class="card"><h3>`)
		m.text(T(loc, "dashboard.recent_flights"))
		m.raw(`</h3><div id="recentFlightsTable">`)
		recentFlightsTable(m, loc, view.RecentFlights)
		m.raw(`</div></section><section class="card"><h3>`)
		m.text(T(loc, "dashboard.activity"))
		m.raw(`</h3><div id="activityFeed">`)
		activityFeed(m, loc, view.Activity)
		m.raw(`</div></section></div><section class="card"><h3>`)
		m.text(T(loc, "dashboard.audit"))
		m.raw(`</h3><div id="auditLog">`)
		auditTable(m, loc, view.Audit)
		m.raw(`</div></section>`)
	}))
}

func statCard(m *markup, id string, iconName string, tone string, label string, value string) {
	m.raw(`<div class="stat-card"><div`)
	m.attr("class", "stat-icon "+tone)
	m.raw(">")
	m.icon(iconName)
	m.raw(`</div><div class="stat-details"><h3`)
	m.attr("id", id)
	m.raw(">")
	m.text(value)
	m.raw(`</h3><p>`)
	m.text(label)
	m.raw(`</p></div></div>`)
}

func recentFlightsTable(m *markup, loc Localizer, rows []FlightRow) {
	m.tableHead(loc, "col.flight_id", "col.route", "col.airline", "col.date", "col.price", "col.actions")
	for _, row := range rows {
		m.raw("<tr>")
		m.strongCell(row.ID)
		m.textCell(row.Route)
		m.textCell(row.Airline)
		m.textCell(row.Date)
		m.strongCell(row.Price)
		m.raw("<td>")
		flightActions(m, loc, row)
		m.raw("</td></tr>")
	}
	m.tableEnd()
}

func activityFeed(m *markup, loc Localizer, items []ActivityItem) {
	if len(items) == 0 {
		m.notice("", T(loc, "dashboard.activity.empty"))
		return
	}
	for _, item := range items {
		tone, iconName := "red", "times-circle"
		if item.Confirmed {
			tone, iconName = "green", "check-circle"
		}
		m.raw(`<div class="activity-item"><div`)
		m.attr("class", "activity-icon "+tone)
		m.raw(">")
		m.icon(iconName)
		m.raw(`</div><div class="activity-content"><h4>`)
		m.text(item.Heading)
		m.raw(`</h4><p>`)
		m.text(item.Detail)
		m.raw(`</p><div class="activity-time">`)
		m.text(item.Meta)
		m.raw(`</div></div></div>`)
	}
}

func auditTable(m *markup, loc Localizer, rows []AuditRow) {
	if len(rows) == 0 {
		m.notice("", T(loc, "dashboard.audit.empty"))
		return
	}
	m.tableHead(loc, "col.when", "col.action", "col.target", "col.outcome")
	for _, row := range rows {
		m.raw("<tr>")
		m.textCell(row.When)
		m.textCell(row.Action)
		m.codeCell(row.Target)
		m.raw("<td><span")
		m.attr("class", "badge "+outcomeTone(row.Outcome))
		m.raw(">")
		m.text(row.Outcome)
		m.raw("</span></td></tr>")
	}
	m.tableEnd()
}

func outcomeTone(outcome string) string {
	switch outcome {
	case "success":
		return "success"
	case "simulated":
		return "info"
	default:
		return "danger"
	}
}
