// Package flightapi is the HTTP client for the flight-booking REST backend.
package flightapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aopps/admin-console/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the hosted flight API.
const DefaultBaseURL = "https://daa-project-1-7w2x.onrender.com"

// maxErrorBody caps how much of a rejected response is kept for display.
const maxErrorBody = 4 << 10

// Endpoint labels used for tracing and metrics.
const (
	EndpointStats         = "stats"
	EndpointFlights       = "flights"
	EndpointAirports      = "airports"
	EndpointBookings      = "bookings"
	EndpointUsers         = "users"
	EndpointFlightAdd     = "flight_add"
	EndpointFlightUpdate  = "flight_update"
	EndpointFlightDelete  = "flight_delete"
	EndpointAirportAdd    = "airport_add"
	EndpointAirportUpdate = "airport_update"
	EndpointAirportDelete = "airport_delete"
)

// Outcomes reported to the Observer.
const (
	OutcomeOK          = "ok"
	OutcomeStatus      = "status_error"
	OutcomeTransport   = "transport_error"
	OutcomeDecodeError = "decode_error"
)

// Observer records per-call outcomes, e.g. into Prometheus.
type Observer interface {
	ObserveCall(endpoint string, outcome string, elapsed time.Duration)
}

// ListFlightsParams selects a page of flights. A zero Page omits the page
// and search parameters, which the backend reads as "first Limit flights".
type ListFlightsParams struct {
	Page   int
	Limit  int
	Search string
}

// Client calls the flight API. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tracer     trace.Tracer
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithObserver records call outcomes.
func WithObserver(observer Observer) Option {
	return func(c *Client) { c.observer = observer }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer("github.com/aopps/admin-console/internal/services/admin/flightapi")
		}
	}
}

// New builds a client for baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("flight api base url is required")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse flight api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("flight api base url must be http or https, got %q", baseURL)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeouts.APIRequest},
		tracer:     otel.Tracer("github.com/aopps/admin-console/internal/services/admin/flightapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Stats fetches the dashboard aggregate.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := c.getJSON(ctx, EndpointStats, "/api/admin/stats", nil, func(body []byte) error {
		return json.Unmarshal(body, &stats)
	})
	return stats, err
}

// ListFlights fetches flights, tolerating the legacy bare-array response.
func (c *Client) ListFlights(ctx context.Context, params ListFlightsParams) (FlightPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Page > 0 {
		query.Set("search", params.Search)
	}

	var page FlightPage
	err := c.getJSON(ctx, EndpointFlights, "/api/flights", query, func(body []byte) error {
		var err error
		page, err = decodeFlightPage(body)
		return err
	})
	return page, err
}

// ListAirports fetches every airport.
func (c *Client) ListAirports(ctx context.Context) ([]Airport, error) {
	var airports []Airport
	err := c.getJSON(ctx, EndpointAirports, "/api/airports", nil, func(body []byte) error {
		return json.Unmarshal(body, &airports)
	})
	return airports, err
}

// ListBookings fetches every booking.
func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := c.getJSON(ctx, EndpointBookings, "/api/bookings", nil, func(body []byte) error {
		return json.Unmarshal(body, &bookings)
	})
	return bookings, err
}

// ListUsers fetches every registered user.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.getJSON(ctx, EndpointUsers, "/api/users", nil, func(body []byte) error {
		return json.Unmarshal(body, &users)
	})
	return users, err
}

// AddFlight creates a flight and returns the backend's confirmation text.
func (c *Client) AddFlight(ctx context.Context, in FlightInput) (string, error) {
	return c.postJSON(ctx, EndpointFlightAdd, "/admin/flight/add", nil, in)
}

// UpdateFlight merges in into the flight currently identified by originalID.
func (c *Client) UpdateFlight(ctx context.Context, originalID string, in FlightInput) (string, error) {
	return c.postJSON(ctx, EndpointFlightUpdate, "/admin/flight/update", url.Values{"id": {originalID}}, in)
}

// DeleteFlight removes a flight by id.
func (c *Client) DeleteFlight(ctx context.Context, id string) (string, error) {
	return c.postJSON(ctx, EndpointFlightDelete, "/admin/flight/delete", nil, deleteFlightBody{ID: id})
}

// AddAirport creates an airport.
func (c *Client) AddAirport(ctx context.Context, in AirportInput) (string, error) {
	return c.postJSON(ctx, EndpointAirportAdd, "/admin/airport/add", nil, in)
}

// UpdateAirport merges in into the airport currently identified by originalCode.
func (c *Client) UpdateAirport(ctx context.Context, originalCode string, in AirportInput) (string, error) {
	return c.postJSON(ctx, EndpointAirportUpdate, "/admin/airport/update", url.Values{"code": {originalCode}}, in)
}

// DeleteAirport removes an airport by code.
func (c *Client) DeleteAirport(ctx context.Context, code string) (string, error) {
	return c.postJSON(ctx, EndpointAirportDelete, "/admin/airport/delete", nil, deleteAirportBody{Code: code})
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, decode func([]byte) error) error {
	_, err := c.do(ctx, endpoint, http.MethodGet, path, query, nil, decode)
	return err
}

func (c *Client) postJSON(ctx context.Context, endpoint, path string, query url.Values, payload any) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode %s request: %w", endpoint, err)
	}
	body, err := c.do(ctx, endpoint, http.MethodPost, path, query, encoded, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, payload []byte, decode func([]byte) error) ([]byte, error) {
	if c == nil {
		return nil, errors.New("flight api client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := c.tracer.Start(ctx, "flightapi."+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	target := *c.baseURL
	target.Path = strings.TrimRight(target.Path, "/") + path
	target.RawQuery = query.Encode()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.full", target.String()),
	)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, OutcomeTransport, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.observe(endpoint, OutcomeStatus, time.Since(start))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(text)}
		span.SetStatus(codes.Error, statusErr.Error())
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, OutcomeTransport, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}
	if decode != nil {
		if err := decode(body); err != nil {
			c.observe(endpoint, OutcomeDecodeError, time.Since(start))
			span.RecordError(err)
			span.SetStatus(codes.Error, "decode")
			return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}
	c.observe(endpoint, OutcomeOK, time.Since(start))
	return body, nil
}

func (c *Client) observe(endpoint, outcome string, elapsed time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveCall(endpoint, outcome, elapsed)
}
