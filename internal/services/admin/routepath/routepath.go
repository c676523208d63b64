package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
	Healthz      = "/healthz"
	Metrics      = "/metrics"
)

const (
	Flights       = "/flights"
	FlightsTable  = "/flights/table"
	FlightsAdd    = "/flights/add"
	FlightsUpdate = "/flights/update"
	FlightsDelete = "/flights/delete"
	FlightsPrefix = "/flights/"
)

const (
	Airports       = "/airports"
	AirportsAdd    = "/airports/add"
	AirportsUpdate = "/airports/update"
	AirportsDelete = "/airports/delete"
	AirportsPrefix = "/airports/"
)

const (
	Analytics = "/analytics"
)

const (
	Bookings       = "/bookings"
	BookingsCancel = "/bookings/cancel"
)

const (
	Users       = "/users"
	UsersDelete = "/users/delete"
)

// Query parameters shared by list pages.
const (
	PageParam   = "page"
	SearchParam = "search"
)

// FlightEdit returns the edit form path for a flight.
func FlightEdit(flightID string) string {
	return Flights + "/" + escapeSegment(flightID) + "/edit"
}

// AirportEdit returns the edit form path for an airport.
func AirportEdit(code string) string {
	return Airports + "/" + escapeSegment(code) + "/edit"
}

// FlightsPage returns the flights list path for a page and search term.
// Page 1 and an empty search are omitted.
func FlightsPage(page int, search string) string {
	return withListQuery(Flights, page, search)
}

// FlightsTablePage is FlightsPage for the table fragment.
func FlightsTablePage(page int, search string) string {
	return withListQuery(FlightsTable, page, search)
}

func withListQuery(path string, page int, search string) string {
	values := url.Values{}
	if page > 1 {
		values.Set(PageParam, strconv.Itoa(page))
	}
	if strings.TrimSpace(search) != "" {
		values.Set(SearchParam, search)
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
