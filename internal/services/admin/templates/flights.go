package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// FlightsTableID is the swap target for pagination and search.
const FlightsTableID = "allFlightsTable"

// FlightRow represents a row in the flights tables.
type FlightRow struct {
	ID        string
	Airline   string
	Route     string
	Date      string
	Departure string
	Price     string
	EditURL   string
}

// Pagination holds the Prev/Next controls of a paged table.
type Pagination struct {
	Label        string
	PrevURL      string
	PrevPageURL  string
	PrevDisabled bool
	NextURL      string
	NextPageURL  string
	NextDisabled bool
}

// FlightsTableView is the swappable part of the flights page.
type FlightsTableView struct {
	Rows []FlightRow
	// Notice replaces the table when set: the empty result or a load error.
	Notice     string
	NoticeIcon string
	Pagination Pagination
}

// FlightsPageView provides data for the flights page.
type FlightsPageView struct {
	Search string
	Table  FlightsTableView
	Form   FlightFormView
}

// FlightFormView provides data for the add and edit flight forms.
type FlightFormView struct {
	Heading    string
	Action     string
	Submit     string
	OriginalID string
	Flight     flightapi.Flight
	// PriceText keeps the submitted price when it could not be parsed.
	PriceText string
	Missing   string
}

// FlightsPage renders the full flights document.
func FlightsPage(view FlightsPageView, page PageContext) templ.Component {
	loc := page.Loc
	heading := T(loc, "flights.title")
	return Layout(page, heading, component(func(ctx context.Context, m *markup) {
		pageHeader(m, heading)
		m.raw(`<div class="toolbar"><form class="search-form" method="get"`)
		m.url("action", routepath.Flights)
		m.url("hx-get", routepath.FlightsTable)
		m.attr("hx-target", "#"+FlightsTableID)
		m.attr("hx-sync", "#"+FlightsTableID+":replace")
		m.raw(`><input type="search" id="flightSearchInput"`)
		m.attr("name", routepath.SearchParam)
		m.attr("value", view.Search)
		m.attr("placeholder", T(loc, "flights.search.placeholder"))
		m.raw(`><button type="submit" class="btn btn-primary">`)
		m.icon("search")
		m.raw(" ")
		m.text(T(loc, "action.search"))
		m.raw(`</button></form></div><div class="card"><div`)
		m.attr("id", FlightsTableID)
		m.attr("hx-sync", "this:replace")
		m.raw(">")
		m.render(ctx, FlightsTable(view.Table, loc))
		m.raw(`</div></div><details class="card form-card"><summary>`)
		m.icon("plus")
		m.raw(" ")
		m.text(T(loc, "action.add_flight"))
		m.raw(`</summary>`)
		flightForm(m, loc, view.Form)
		m.raw(`</details>`)
	}))
}

// FlightsTable renders the flights table with its pagination controls.
func FlightsTable(view FlightsTableView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if view.Notice != "" {
			m.notice(view.NoticeIcon, view.Notice)
			return
		}
		m.tableHead(loc, "col.flight_id", "col.airline", "col.route", "col.date", "col.departure", "col.price", "col.actions")
		for _, row := range view.Rows {
			m.raw("<tr>")
			m.strongCell(row.ID)
			m.textCell(row.Airline)
			m.textCell(row.Route)
			m.textCell(row.Date)
			m.textCell(row.Departure)
			m.strongCell(row.Price)
			m.raw("<td>")
			flightActions(m, loc, row)
			m.raw("</td></tr>")
		}
		m.tableEnd()
		pagination(m, loc, view.Pagination)
	})
}

func pagination(m *markup, loc Localizer, p Pagination) {
	m.raw(`<div class="pagination-controls">`)
	pageButton(m, p.PrevURL, p.PrevPageURL, p.PrevDisabled, func() {
		m.icon("chevron-left")
		m.raw(" ")
		m.text(T(loc, "action.prev"))
	})
	m.raw(`<span class="page-label">`)
	m.text(p.Label)
	m.raw(`</span>`)
	pageButton(m, p.NextURL, p.NextPageURL, p.NextDisabled, func() {
		m.text(T(loc, "action.next"))
		m.raw(" ")
		m.icon("chevron-right")
	})
	m.raw(`</div>`)
}

// pageButton swaps the table from tableURL and pushes pageURL into history.
func pageButton(m *markup, tableURL string, pageURL string, disabled bool, label func()) {
	m.raw(`<button type="button" class="btn btn-secondary"`)
	if disabled {
		m.flag("disabled", true)
	} else {
		m.url("hx-get", tableURL)
		m.attr("hx-target", "#"+FlightsTableID)
		m.url("hx-push-url", pageURL)
	}
	m.raw(">")
	label()
	m.raw("</button>")
}

func flightActions(m *markup, loc Localizer, row FlightRow) {
	m.raw(`<div class="action-buttons"><a class="btn-icon edit"`)
	m.url("href", row.EditURL)
	m.attr("title", T(loc, "action.edit"))
	m.attr("aria-label", T(loc, "action.edit"))
	m.raw(">")
	m.icon("edit")
	m.raw("</a>")
	m.postButton(routepath.FlightsDelete, flightapi.FieldID, row.ID, T(loc, "flights.confirm_delete"), "btn-icon delete", "trash", T(loc, "action.delete"), false)
	m.raw(`</div>`)
}

// FlightEditPage renders the edit form, or a not-found notice when Missing is set.
func FlightEditPage(view FlightFormView, page PageContext) templ.Component {
	return Layout(page, view.Heading, component(func(_ context.Context, m *markup) {
		pageHeader(m, view.Heading)
		m.raw(`<div class="card form-card">`)
		if view.Missing != "" {
			m.notice("plane-slash", view.Missing)
		} else {
			flightForm(m, page.Loc, view)
		}
		m.raw(`<p><a class="btn btn-secondary"`)
		m.url("href", routepath.Flights)
		m.raw(">")
		m.text(T(page.Loc, "action.back"))
		m.raw(`</a></p></div>`)
	}))
}

func flightForm(m *markup, loc Localizer, view FlightFormView) {
	f := view.Flight
	m.raw(`<form method="post" class="form-grid"`)
	m.url("action", view.Action)
	m.url("hx-post", view.Action)
	m.raw(">")
	if view.OriginalID != "" {
		m.hiddenInput(flightapi.FieldOriginalID, view.OriginalID)
	}
	formField(m, T(loc, "col.flight_id"), "text", flightapi.FieldID, f.ID, true)
	formField(m, T(loc, "col.airline"), "text", flightapi.FieldAirline, f.Airline, true)
	formField(m, T(loc, "col.from"), "text", flightapi.FieldFromCode, f.FromCode, true)
	formField(m, T(loc, "col.to"), "text", flightapi.FieldToCode, f.ToCode, true)
	formField(m, T(loc, "col.date"), "date", flightapi.FieldDate, f.Date, true)
	formField(m, T(loc, "col.departure"), "time", flightapi.FieldDeparture, f.Departure, true)
	formField(m, T(loc, "col.arrival"), "time", flightapi.FieldArrival, f.Arrival, false)
	formField(m, T(loc, "col.duration"), "text", flightapi.FieldDuration, f.Duration, false)
	formField(m, T(loc, "col.price"), "number", flightapi.FieldPrice, view.PriceText, true)
	m.raw(`<div class="form-actions"><button type="submit" class="btn btn-primary">`)
	m.text(view.Submit)
	m.raw(`</button></div></form>`)
}

func formField(m *markup, label string, inputType string, name string, value string, required bool) {
	m.raw(`<label class="form-group"><span>`)
	m.text(label)
	m.raw(`</span><input`)
	m.attr("type", inputType)
	m.attr("name", name)
	m.attr("value", value)
	if inputType == "number" {
		m.attr("step", "any")
	}
	m.flag("required", required)
	m.raw("></label>")
}
