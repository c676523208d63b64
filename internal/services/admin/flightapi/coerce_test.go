package flightapi

import (
	"encoding/json"
	"net/url"
	"testing"
)

func TestParseLeadingInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "4500", want: 4500, wantOK: true},
		{in: "  4500  ", want: 4500, wantOK: true},
		{in: "4500.75", want: 4500, wantOK: true},
		{in: "4500rs", want: 4500, wantOK: true},
		{in: "-12", want: -12, wantOK: true},
		{in: "+7", want: 7, wantOK: true},
		{in: "0x1A", want: 26, wantOK: true},
		{in: "", wantOK: false},
		{in: "abc", wantOK: false},
		{in: "-", wantOK: false},
		{in: "99999999999999999999999", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := ParseLeadingInt(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseLeadingInt(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseLeadingFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "28.5562", want: 28.5562, wantOK: true},
		{in: " -77.1 ", want: -77.1, wantOK: true},
		{in: ".5", want: 0.5, wantOK: true},
		{in: "5.", want: 5, wantOK: true},
		{in: "1e3", want: 1000, wantOK: true},
		{in: "1e", want: 1, wantOK: true},
		{in: "12.5N", want: 12.5, wantOK: true},
		{in: "", wantOK: false},
		{in: ".", wantOK: false},
		{in: "north", wantOK: false},
		{in: "1e999", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := ParseLeadingFloat(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseLeadingFloat(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestFlightInputFromFormCoercesPrice(t *testing.T) {
	t.Parallel()

	form := url.Values{
		FieldOriginalID: {"FL1"},
		FieldID:         {" FL1 "},
		FieldAirline:    {"IndiGo"},
		FieldFromCode:   {"DEL"},
		FieldToCode:     {"BOM"},
		FieldDate:       {"2025-12-01"},
		FieldDeparture:  {"14:30"},
		FieldPrice:      {"4500"},
	}

	body, err := json.Marshal(FlightInputFromForm(form))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["price"] != float64(4500) {
		t.Fatalf("price = %#v, want number 4500", decoded["price"])
	}
	if _, ok := decoded[FieldOriginalID]; ok {
		t.Fatal("originalId must not be sent")
	}
	if decoded["id"] != "FL1" {
		t.Fatalf("id = %#v", decoded["id"])
	}
	if string(body[:1]) != "{" || !json.Valid(body) {
		t.Fatalf("invalid body %s", body)
	}
}

func TestFlightInputFromFormUnparsablePriceIsNull(t *testing.T) {
	t.Parallel()

	in := FlightInputFromForm(url.Values{FieldPrice: {"free"}})
	if in.Price != nil {
		t.Fatalf("price = %v, want nil", *in.Price)
	}
}

func TestAirportInputFromForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		form     url.Values
		required bool
		want     string
	}{
		{
			name:     "add coerces both",
			form:     url.Values{"code": {"DEL"}, "name": {"IGI"}, "city": {"Delhi"}, "lat": {"28.5"}, "lng": {"77.1"}},
			required: true,
			want:     `{"city":"Delhi","code":"DEL","lat":28.5,"lng":77.1,"name":"IGI"}`,
		},
		{
			name:     "add sends unparsable as null",
			form:     url.Values{"code": {"DEL"}, "lat": {""}, "lng": {"east"}},
			required: true,
			want:     `{"city":"","code":"DEL","lat":null,"lng":null,"name":""}`,
		},
		{
			name: "update skips blank coordinates",
			form: url.Values{"code": {"DEL"}, "lat": {""}, "lng": {"77.3"}},
			want: `{"city":"","code":"DEL","lng":77.3,"name":""}`,
		},
		{
			name: "update skips missing coordinates",
			form: url.Values{"code": {"DEL"}},
			want: `{"city":"","code":"DEL","name":""}`,
		},
	}

	for _, tc := range tests {
		body, err := json.Marshal(AirportInputFromForm(tc.form, tc.required))
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		if string(body) != tc.want {
			t.Fatalf("%s: body = %s, want %s", tc.name, body, tc.want)
		}
	}
}
