package admin

import (
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
	"github.com/aopps/admin-console/internal/services/admin/storage"
	"github.com/aopps/admin-console/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// formatCount renders an integer with the locale's digit grouping.
func formatCount(loc *message.Printer, n int) string {
	return loc.Sprintf("%d", n)
}

// formatCurrency renders an amount in rupees rounded to whole units.
func formatCurrency(loc *message.Printer, amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return loc.Sprintf("common.currency", int(math.Round(amount)))
}

// activeRoutes estimates the number of active routes from the stats: none
// when no booking has a popular route yet, otherwise half the flights.
func activeRoutes(stats flightapi.Stats) int {
	if stats.PopularRoute == flightapi.NoPopularRoute {
		return 0
	}
	return int(math.Round(float64(stats.TotalFlights) / 2))
}

// formatRoute renders "FROM → TO".
func formatRoute(from string, to string) string {
	return from + " → " + to
}

// orNA substitutes the localized N/A for blank values.
func orNA(loc *message.Printer, value string) string {
	if strings.TrimSpace(value) == "" {
		return loc.Sprintf("common.na")
	}
	return value
}

func buildDashboardStats(stats flightapi.Stats, loc *message.Printer) templates.DashboardStats {
	return templates.DashboardStats{
		TotalFlights:  formatCount(loc, stats.TotalFlights),
		TotalAirports: formatCount(loc, stats.TotalAirports),
		ActiveRoutes:  formatCount(loc, activeRoutes(stats)),
		AvgPrice:      formatCurrency(loc, stats.CheapestPrice),
		TotalUsers:    formatCount(loc, stats.TotalUsers),
		TotalRevenue:  formatCurrency(loc, stats.TotalRevenue),
	}
}

func buildFlightRows(flights []flightapi.Flight, loc *message.Printer) []templates.FlightRow {
	rows := make([]templates.FlightRow, 0, len(flights))
	for _, flight := range flights {
		rows = append(rows, templates.FlightRow{
			ID:        flight.ID,
			Airline:   flight.Airline,
			Route:     formatRoute(flight.FromCode, flight.ToCode),
			Date:      flight.Date,
			Departure: flight.Departure,
			Price:     formatCurrency(loc, float64(flight.Price)),
			EditURL:   routepath.FlightEdit(flight.ID),
		})
	}
	return rows
}

// buildPagination renders the Prev/Next controls. Prev is disabled on the
// first page and Next on the last.
func buildPagination(page int, totalPages int, search string, loc *message.Printer) templates.Pagination {
	if totalPages < 1 {
		totalPages = 1
	}
	p := templates.Pagination{
		Label:        loc.Sprintf("flights.page", page, totalPages),
		PrevDisabled: page <= 1,
		NextDisabled: page >= totalPages,
	}
	if !p.PrevDisabled {
		p.PrevURL = routepath.FlightsTablePage(page-1, search)
		p.PrevPageURL = routepath.FlightsPage(page-1, search)
	}
	if !p.NextDisabled {
		p.NextURL = routepath.FlightsTablePage(page+1, search)
		p.NextPageURL = routepath.FlightsPage(page+1, search)
	}
	return p
}

func buildAirportRows(airports []flightapi.Airport) []templates.AirportRow {
	rows := make([]templates.AirportRow, 0, len(airports))
	for _, airport := range airports {
		rows = append(rows, templates.AirportRow{
			Code:    airport.Code,
			City:    airport.City,
			Name:    airport.Name,
			EditURL: routepath.AirportEdit(airport.Code),
		})
	}
	return rows
}

// sortBookingsNewestFirst orders bookings by booking_date descending.
// Unparsable dates sort last, keeping their relative order.
func sortBookingsNewestFirst(bookings []flightapi.Booking) []flightapi.Booking {
	sorted := append([]flightapi.Booking(nil), bookings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		iTS, iOK := parseBookingDate(sorted[i].BookingDate)
		jTS, jOK := parseBookingDate(sorted[j].BookingDate)
		if !iOK || !jOK {
			return iOK && !jOK
		}
		return iTS.After(jTS)
	})
	return sorted
}

var bookingDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseBookingDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range bookingDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func buildBookingRows(bookings []flightapi.Booking, page templates.PageContext) []templates.BookingRow {
	rows := make([]templates.BookingRow, 0, len(bookings))
	for _, booking := range bookings {
		id := booking.BookingID.String()
		rows = append(rows, templates.BookingRow{
			ID:        id,
			Passenger: booking.PassengerName,
			Route:     formatRoute(booking.FromCode, booking.ToCode),
			Date:      booking.Date,
			Status:    booking.Status,
			Confirmed: booking.Confirmed(),
			Cancelled: booking.Cancelled(),
			TicketURL: ticketLink(page, id),
		})
	}
	return rows
}

// ticketLink points at the public ticket page for a booking.
func ticketLink(page templates.PageContext, bookingID string) string {
	return templates.SiteLink(page, "ticket.html") + "?" + templates.BookingIDField + "=" + url.QueryEscape(bookingID)
}

func buildActivity(bookings []flightapi.Booking, loc *message.Printer) []templates.ActivityItem {
	latest := sortBookingsNewestFirst(bookings)
	if len(latest) > activityFeedLimit {
		latest = latest[:activityFeedLimit]
	}
	items := make([]templates.ActivityItem, 0, len(latest))
	for _, booking := range latest {
		items = append(items, templates.ActivityItem{
			Confirmed: booking.Confirmed(),
			Heading:   loc.Sprintf("dashboard.activity.heading", booking.Status),
			Detail:    loc.Sprintf("dashboard.activity.detail", booking.PassengerName, booking.FromCode, booking.ToCode),
			Meta:      loc.Sprintf("dashboard.activity.meta", booking.BookingDate, booking.BookingID.String()),
		})
	}
	return items
}

func buildUserRows(users []flightapi.User, loc *message.Printer) []templates.UserRow {
	rows := make([]templates.UserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, templates.UserRow{
			ID:     user.ID.String(),
			Name:   user.Name,
			Email:  user.Email,
			Joined: orNA(loc, user.CreatedAt),
		})
	}
	return rows
}

func buildAuditRows(entries []storage.AuditEntry) []templates.AuditRow {
	rows := make([]templates.AuditRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, templates.AuditRow{
			When:    entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			Action:  entry.Action,
			Target:  entry.Target,
			Outcome: entry.Outcome,
		})
	}
	return rows
}

// countAirlines returns the number of distinct airline names.
func countAirlines(flights []flightapi.Flight) int {
	seen := make(map[string]struct{}, len(flights))
	for _, flight := range flights {
		seen[flight.Airline] = struct{}{}
	}
	return len(seen)
}
