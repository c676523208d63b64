package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// AirportRow represents a row in the airports table.
type AirportRow struct {
	Code    string
	City    string
	Name    string
	EditURL string
}

// AirportsPageView provides data for the airports page.
type AirportsPageView struct {
	Rows []AirportRow
	Form AirportFormView
}

// AirportFormView provides data for the add and edit airport forms.
type AirportFormView struct {
	Heading      string
	Action       string
	Submit       string
	OriginalCode string
	Code         string
	Name         string
	City         string
	Lat          string
	Lng          string
	Missing      string
}

// AirportsPage renders the full airports document.
func AirportsPage(view AirportsPageView, page PageContext) templ.Component {
	loc := page.Loc
	heading := T(loc, "airports.title")
	return Layout(page, heading, component(func(_ context.Context, m *markup) {
		pageHeader(m, heading)
		m.raw(`<div class="card"><div id="airportsTable">`)
		m.tableHead(loc, "col.code", "col.city", "col.airport_name", "col.actions")
		for _, row := range view.Rows {
			m.raw("<tr>")
			m.strongCell(row.Code)
			m.textCell(row.City)
			m.textCell(row.Name)
			m.raw(`<td><div class="action-buttons"><a class="btn-icon edit"`)
			m.url("href", row.EditURL)
			m.attr("title", T(loc, "action.edit"))
			m.attr("aria-label", T(loc, "action.edit"))
			m.raw(">")
			m.icon("edit")
			m.raw("</a>")
			m.postButton(routepath.AirportsDelete, flightapi.FieldCode, row.Code, T(loc, "airports.confirm_delete"), "btn-icon delete", "trash", T(loc, "action.delete"), false)
			m.raw(`</div></td></tr>`)
		}
		m.tableEnd()
		m.raw(`</div></div><details class="card form-card"><summary>`)
		m.icon("plus")
		m.raw(" ")
		m.text(T(loc, "action.add_airport"))
		m.raw(`</summary>`)
		airportForm(m, loc, view.Form, true)
		m.raw(`</details>`)
	}))
}

// AirportEditPage renders the edit form, or a not-found notice when Missing is set.
func AirportEditPage(view AirportFormView, page PageContext) templ.Component {
	return Layout(page, view.Heading, component(func(_ context.Context, m *markup) {
		pageHeader(m, view.Heading)
		m.raw(`<div class="card form-card">`)
		if view.Missing != "" {
			m.notice("map-marker-alt", view.Missing)
		} else {
			airportForm(m, page.Loc, view, false)
		}
		m.raw(`<p><a class="btn btn-secondary"`)
		m.url("href", routepath.Airports)
		m.raw(">")
		m.text(T(page.Loc, "action.back"))
		m.raw(`</a></p></div>`)
	}))
}

// airportForm renders the airport fields. Coordinates are required on add
// only; a blank coordinate on edit leaves the stored value alone.
func airportForm(m *markup, loc Localizer, view AirportFormView, requireCoordinates bool) {
	m.raw(`<form method="post" class="form-grid"`)
	m.url("action", view.Action)
	m.url("hx-post", view.Action)
	m.raw(">")
	if view.OriginalCode != "" {
		m.raw(`<input type="hidden" id="editAirportOriginalCode"`)
		m.attr("name", flightapi.FieldOriginalCode)
		m.attr("value", view.OriginalCode)
		m.raw(">")
	}
	formField(m, T(loc, "col.code"), "text", flightapi.FieldCode, view.Code, true)
	formField(m, T(loc, "col.airport_name"), "text", flightapi.FieldName, view.Name, true)
	formField(m, T(loc, "col.city"), "text", flightapi.FieldCity, view.City, true)
	formField(m, T(loc, "col.latitude"), "number", flightapi.FieldLat, view.Lat, requireCoordinates)
	formField(m, T(loc, "col.longitude"), "number", flightapi.FieldLng, view.Lng, requireCoordinates)
	m.raw(`<div class="form-actions"><button type="submit" class="btn btn-primary">`)
	m.text(view.Submit)
	m.raw(`</button></div></form>`)
}
