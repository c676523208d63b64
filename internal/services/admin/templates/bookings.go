package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// BookingIDField is the form field naming the booking to cancel.
const BookingIDField = "booking_id"

// BookingRow represents a row in the bookings table.
type BookingRow struct {
	ID        string
	Passenger string
	Route     string
	Date      string
	Status    string
	Confirmed bool
	Cancelled bool
	TicketURL string
}

// BookingsView provides data for the bookings page.
type BookingsView struct {
	Rows   []BookingRow
	Notice string
}

// BookingsPage renders the full bookings document.
func BookingsPage(view BookingsView, page PageContext) templ.Component {
	loc := page.Loc
	heading := T(loc, "bookings.title")
	return Layout(page, heading, component(func(_ context.Context, m *markup) {
		pageHeader(m, heading)
		m.raw(`<div class="card"><div id="allBookingsTable">`)
		switch {
		case view.Notice != "":
			m.notice("", view.Notice)
		case len(view.Rows) == 0:
			m.notice("ticket-alt", T(loc, "bookings.empty"))
		default:
			m.tableHead(loc, "col.id", "col.passenger", "col.route", "col.date", "col.status", "col.actions")
			for _, row := range view.Rows {
				tone := "danger"
				if row.Confirmed {
					tone = "success"
				}
				m.raw("<tr>")
				m.codeCell(row.ID)
				m.textCell(row.Passenger)
				m.textCell(row.Route)
				m.textCell(row.Date)
				m.raw("<td><span")
				m.attr("class", "badge "+tone)
				m.raw(">")
				m.text(row.Status)
				m.raw(`</span></td><td><div class="action-buttons"><a class="btn-icon edit" target="_blank" rel="noopener"`)
				m.url("href", row.TicketURL)
				m.attr("title", T(loc, "action.ticket"))
				m.attr("aria-label", T(loc, "action.ticket"))
				m.raw(">")
				m.icon("ticket-alt")
				m.raw("</a>")
				m.postButton(routepath.BookingsCancel, BookingIDField, row.ID, T(loc, "bookings.confirm_cancel", row.ID), "btn-icon delete", "times", T(loc, "action.cancel"), row.Cancelled)
				m.raw(`</div></td></tr>`)
			}
			m.tableEnd()
		}
		m.raw(`</div></div>`)
	}))
}
