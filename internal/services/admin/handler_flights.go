package admin

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
	"github.com/aopps/admin-console/internal/services/admin/templates"
	"github.com/aopps/admin-console/internal/services/shared/htmx"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

// loadFlightsTable fetches one page of flights and builds the table view.
func (h *Handler) loadFlightsTable(ctx context.Context, r *http.Request, loc *message.Printer, page int, search string) templates.FlightsTableView {
	result, err := h.api.ListFlights(ctx, flightapi.ListFlightsParams{
		Page:   page,
		Limit:  flightsPageSize,
		Search: search,
	})
	if err != nil {
		h.log(r).Error("list flights", zap.Int("page", page), zap.String("search", search), zap.Error(err))
		return templates.FlightsTableView{
			Notice:     loc.Sprintf("flights.load_error"),
			NoticeIcon: "exclamation-triangle",
		}
	}
	if result.Legacy {
		h.log(r).Debug("flight api answered with a bare array", zap.Int("flights", len(result.Flights)))
	}
	if len(result.Flights) == 0 {
		return templates.FlightsTableView{
			Notice:     loc.Sprintf("flights.empty", search),
			NoticeIcon: "plane-slash",
		}
	}
	return templates.FlightsTableView{
		Rows:       buildFlightRows(result.Flights, loc),
		Pagination: buildPagination(page, result.TotalPages, search, loc),
	}
}

func (h *Handler) handleFlightsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	pageNumber, search := parsePage(r), parseSearch(r)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	view := templates.FlightsPageView{
		Search: search,
		Table:  h.loadFlightsTable(ctx, r, loc, pageNumber, search),
		Form:   addFlightForm(loc),
	}
	h.renderPage(w, r, loc, templates.FlightsPage(view, page), loc.Sprintf("flights.title"))
}

// handleFlightsTable serves the table fragment swapped in by search and
// pagination. Plain requests are sent to the full page.
func (h *Handler) handleFlightsTable(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.FlightsPage(parsePage(r), parseSearch(r)), http.StatusSeeOther)
		return
	}
	loc, _ := h.localizer(w, r)
	pageNumber, search := parsePage(r), parseSearch(r)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	table := h.loadFlightsTable(ctx, r, loc, pageNumber, search)
	htmx.RenderPage(w, r, templates.FlightsTable(table, loc), nil, "")
}

func (h *Handler) handleFlightEdit(w http.ResponseWriter, r *http.Request, flightID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	flightID = strings.TrimSpace(flightID)
	view := templates.FlightFormView{
		Heading:    loc.Sprintf("flights.edit.title", flightID),
		Action:     routepath.FlightsUpdate,
		Submit:     loc.Sprintf("action.save"),
		OriginalID: flightID,
	}

	ctx, cancel := h.backendContext(r)
	defer cancel()

	flight, found, err := h.findFlight(ctx, flightID)
	switch {
	case err != nil:
		h.log(r).Error("load flight for edit", zap.String("flight_id", flightID), zap.Error(err))
		view.Missing = loc.Sprintf("flights.load_error")
	case !found:
		view.Missing = loc.Sprintf("flights.not_found", flightID)
	default:
		view.Flight = flight
		view.PriceText = strconv.Itoa(flight.Price)
	}

	status := http.StatusOK
	if view.Missing != "" && err == nil {
		status = http.StatusNotFound
	}
	htmx.RenderPageStatus(w, r, status, nil, templates.FlightEditPage(view, page), htmx.TitleTag(templates.PageTitle(loc, view.Heading)))
}

// findFlight looks a flight up in the backend listing; the API has no
// single-flight endpoint.
func (h *Handler) findFlight(ctx context.Context, flightID string) (flightapi.Flight, bool, error) {
	result, err := h.api.ListFlights(ctx, flightapi.ListFlightsParams{Limit: flightLookupLimit})
	if err != nil {
		return flightapi.Flight{}, false, err
	}
	for _, flight := range result.Flights {
		if flight.ID == flightID {
			return flight, true, nil
		}
	}
	return flightapi.Flight{}, false, nil
}

func (h *Handler) handleFlightAdd(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	in := flightapi.FlightInputFromForm(r.PostForm)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	reply, err := h.api.AddFlight(ctx, in)
	h.recordBackendMutation(r, actionFlightAdd, in.ID, reply, err)
	if err != nil {
		redirectWithError(w, r, routepath.Flights, failureMessage(loc, err, "flights.add_failed", "flights.add_error", flightapi.ServerMessage(err)))
		return
	}
	redirectWithMessage(w, r, routepath.Flights, loc.Sprintf("flights.added"))
}

func (h *Handler) handleFlightUpdate(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	originalID := strings.TrimSpace(r.PostForm.Get(flightapi.FieldOriginalID))
	in := flightapi.FlightInputFromForm(r.PostForm)
	if originalID == "" {
		originalID = in.ID
	}

	ctx, cancel := h.backendContext(r)
	defer cancel()

	reply, err := h.api.UpdateFlight(ctx, originalID, in)
	h.recordBackendMutation(r, actionFlightUpdate, originalID, reply, err)
	if err != nil {
		redirectWithError(w, r, routepath.Flights, failureMessage(loc, err, "flights.update_failed", "flights.update_error"))
		return
	}
	redirectWithMessage(w, r, routepath.Flights, loc.Sprintf("flights.updated"))
}

func (h *Handler) handleFlightDelete(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	flightID := strings.TrimSpace(r.PostForm.Get(flightapi.FieldID))

	ctx, cancel := h.backendContext(r)
	defer cancel()

	reply, err := h.api.DeleteFlight(ctx, flightID)
	h.recordBackendMutation(r, actionFlightDelete, flightID, reply, err)
	if err != nil {
		redirectWithError(w, r, routepath.Flights, failureMessage(loc, err, "flights.delete_failed", "flights.delete_error"))
		return
	}
	htmx.Redirect(w, r, routepath.Flights)
}

func addFlightForm(loc *message.Printer) templates.FlightFormView {
	return templates.FlightFormView{
		Heading: loc.Sprintf("flights.add.title"),
		Action:  routepath.FlightsAdd,
		Submit:  loc.Sprintf("action.add_flight"),
	}
}
