package flightapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Text is a string field the backend may emit as a JSON string or number.
type Text string

// UnmarshalJSON accepts strings, numbers and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("text field: %w", err)
	}
	*t = Text(n.String())
	return nil
}

// String returns the raw value.
func (t Text) String() string { return string(t) }

// Flight is a scheduled flight as served by /api/flights.
type Flight struct {
	ID        string `json:"id"`
	Airline   string `json:"airline"`
	FromCode  string `json:"from_code"`
	ToCode    string `json:"to_code"`
	Date      string `json:"date"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
	Price     int    `json:"price"`
}

// Airport is an airport record. The backend names longitude "long"; records
// edited through the console may carry "lng" as well.
type Airport struct {
	ID   Text    `json:"id"`
	Code string  `json:"code"`
	Name string  `json:"name"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// UnmarshalJSON reads longitude from "lng", falling back to "long".
func (a *Airport) UnmarshalJSON(data []byte) error {
	type plain Airport
	var raw struct {
		plain
		Lng  *float64 `json:"lng"`
		Long *float64 `json:"long"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Airport(raw.plain)
	switch {
	case raw.Lng != nil:
		a.Lng = *raw.Lng
	case raw.Long != nil:
		a.Lng = *raw.Long
	}
	return nil
}

// Booking statuses with dedicated rendering.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a passenger booking as served by /api/bookings.
type Booking struct {
	BookingID     Text   `json:"booking_id"`
	PassengerName string `json:"passenger_name"`
	FromCode      string `json:"from_code"`
	ToCode        string `json:"to_code"`
	Date          string `json:"date"`
	BookingDate   string `json:"booking_date"`
	Status        string `json:"status"`
}

// Confirmed reports whether the booking status is confirmed.
func (b Booking) Confirmed() bool {
	return strings.EqualFold(b.Status, StatusConfirmed)
}

// Cancelled reports whether the booking status is cancelled.
func (b Booking) Cancelled() bool {
	return strings.EqualFold(b.Status, StatusCancelled)
}

// User is a registered site user as served by /api/users.
type User struct {
	ID        Text   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Stats is the dashboard aggregate served by /api/admin/stats.
type Stats struct {
	TotalFlights      int     `json:"total_flights"`
	TotalAirports     int     `json:"total_airports"`
	TotalUsers        int     `json:"total_users"`
	TotalRevenue      float64 `json:"total_revenue"`
	CheapestPrice     float64 `json:"cheapest_price"`
	ExpensivePrice    float64 `json:"expensive_price"`
	PopularRoute      string  `json:"popular_route"`
	PopularRouteCount int     `json:"popular_route_count"`
}

// NoPopularRoute is the backend marker for "no bookings yet".
const NoPopularRoute = "N/A"

// FlightPage is one page of flights.
type FlightPage struct {
	Flights    []Flight
	TotalPages int
	// Legacy is set when the backend answered with a bare array.
	Legacy bool
}

// decodeFlightPage accepts either {"flights": [...], "totalPages": n} or a
// bare array. Any other shape yields an empty single page.
func decodeFlightPage(data []byte) (FlightPage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return FlightPage{TotalPages: 1, Legacy: true}, nil
	}

	if trimmed[0] == '[' {
		var flights []Flight
		if err := json.Unmarshal(trimmed, &flights); err != nil {
			return FlightPage{}, err
		}
		return FlightPage{Flights: flights, TotalPages: 1, Legacy: true}, nil
	}

	var envelope struct {
		Flights    []Flight `json:"flights"`
		TotalPages int      `json:"totalPages"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return FlightPage{}, err
	}
	page := FlightPage{Flights: envelope.Flights, TotalPages: envelope.TotalPages}
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	return page, nil
}
