package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	routes := map[string]string{
		Root:           "/",
		StaticPrefix:   "/static/",
		Flights:        "/flights",
		FlightsTable:   "/flights/table",
		FlightsAdd:     "/flights/add",
		FlightsUpdate:  "/flights/update",
		FlightsDelete:  "/flights/delete",
		Airports:       "/airports",
		AirportsDelete: "/airports/delete",
		Analytics:      "/analytics",
		Bookings:       "/bookings",
		BookingsCancel: "/bookings/cancel",
		Users:          "/users",
		UsersDelete:    "/users/delete",
	}
	for got, want := range routes {
		if got != want {
			t.Fatalf("route = %q, want %q", got, want)
		}
	}
}

func TestEditBuilders(t *testing.T) {
	t.Parallel()

	if got := FlightEdit(" FL 1 "); got != "/flights/FL%201/edit" {
		t.Fatalf("FlightEdit = %q", got)
	}
	if got := AirportEdit("DEL"); got != "/airports/DEL/edit" {
		t.Fatalf("AirportEdit = %q", got)
	}
}

func TestFlightsPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page   int
		search string
		want   string
	}{
		{page: 1, want: "/flights"},
		{page: 0, search: "  ", want: "/flights"},
		{page: 3, want: "/flights?page=3"},
		{page: 2, search: "Air India", want: "/flights?page=2&search=Air+India"},
		{page: 1, search: "DEL", want: "/flights?search=DEL"},
		{page: 2, search: " DEL ", want: "/flights?page=2&search=+DEL+"},
	}
	for _, tc := range tests {
		if got := FlightsPage(tc.page, tc.search); got != tc.want {
			t.Fatalf("FlightsPage(%d, %q) = %q, want %q", tc.page, tc.search, got, tc.want)
		}
	}
	if got := FlightsTablePage(2, ""); got != "/flights/table?page=2" {
		t.Fatalf("FlightsTablePage = %q", got)
	}
}
