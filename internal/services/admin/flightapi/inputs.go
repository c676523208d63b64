package flightapi

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Form field names shared by the console forms and the JSON payloads.
const (
	FieldID         = "id"
	FieldAirline    = "airline"
	FieldFromCode   = "from_code"
	FieldToCode     = "to_code"
	FieldDate       = "date"
	FieldDeparture  = "departure"
	FieldArrival    = "arrival"
	FieldDuration   = "duration"
	FieldPrice      = "price"
	FieldCode       = "code"
	FieldName       = "name"
	FieldCity       = "city"
	FieldLat        = "lat"
	FieldLng        = "lng"
	FieldOriginalID = "originalId"
	// FieldOriginalCode carries the airport code being edited.
	FieldOriginalCode = "originalCode"
)

// FlightInput is the body of flight add and update calls.
// A nil Price serializes as null, which is what an unparsable price becomes.
type FlightInput struct {
	ID        string `json:"id"`
	Airline   string `json:"airline"`
	FromCode  string `json:"from_code"`
	ToCode    string `json:"to_code"`
	Date      string `json:"date"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
	Price     *int   `json:"price"`
}

// FlightInputFromForm copies the flight form fields and coerces price to an
// integer. originalId is not part of the payload.
func FlightInputFromForm(form url.Values) FlightInput {
	in := FlightInput{
		ID:        strings.TrimSpace(form.Get(FieldID)),
		Airline:   form.Get(FieldAirline),
		FromCode:  form.Get(FieldFromCode),
		ToCode:    form.Get(FieldToCode),
		Date:      form.Get(FieldDate),
		Departure: form.Get(FieldDeparture),
		Arrival:   form.Get(FieldArrival),
		Duration:  form.Get(FieldDuration),
	}
	if price, ok := ParseLeadingInt(form.Get(FieldPrice)); ok {
		in.Price = &price
	}
	return in
}

// Coordinate is a latitude or longitude form value.
type Coordinate struct {
	// Present is false when the form did not carry the field at all.
	Present bool
	// Valid is false when the value could not be parsed; it is sent as null.
	Valid bool
	Value float64
}

// CoordinateFromForm parses a coordinate field. An empty value on an update
// form leaves the stored coordinate alone.
func CoordinateFromForm(form url.Values, field string, required bool) Coordinate {
	raw, ok := form[field]
	if !ok || len(raw) == 0 {
		return Coordinate{}
	}
	value := raw[0]
	if !required && strings.TrimSpace(value) == "" {
		return Coordinate{}
	}
	parsed, valid := ParseLeadingFloat(value)
	return Coordinate{Present: true, Valid: valid, Value: parsed}
}

// AirportInput is the body of airport add and update calls.
type AirportInput struct {
	Code string
	Name string
	City string
	Lat  Coordinate
	Lng  Coordinate
}

// AirportInputFromForm copies the airport form fields. When required is true
// (add) lat and lng are always sent, as null if unparsable; otherwise they
// are sent only when filled in.
func AirportInputFromForm(form url.Values, required bool) AirportInput {
	return AirportInput{
		Code: strings.TrimSpace(form.Get(FieldCode)),
		Name: form.Get(FieldName),
		City: form.Get(FieldCity),
		Lat:  CoordinateFromForm(form, FieldLat, required),
		Lng:  CoordinateFromForm(form, FieldLng, required),
	}
}

// MarshalJSON omits absent coordinates and writes unparsable ones as null.
func (in AirportInput) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		FieldCode: in.Code,
		FieldName: in.Name,
		FieldCity: in.City,
	}
	for field, coord := range map[string]Coordinate{FieldLat: in.Lat, FieldLng: in.Lng} {
		if !coord.Present {
			continue
		}
		if !coord.Valid {
			body[field] = nil
			continue
		}
		body[field] = coord.Value
	}
	return json.Marshal(body)
}

type deleteFlightBody struct {
	ID string `json:"id"`
}

type deleteAirportBody struct {
	Code string `json:"code"`
}
