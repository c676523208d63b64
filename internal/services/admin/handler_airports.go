package admin

import (
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

// handleAirportsPage renders the airports list. A failed fetch is logged
// and the table is left empty.
func (h *Handler) handleAirportsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	view := templates.AirportsPageView{Form: addAirportForm(loc)}
	airports, err := h.api.ListAirports(ctx)
	if err != nil {
		h.log(r).Error("list airports", zap.Error(err))
	} else {
		view.Rows = buildAirportRows(airports)
	}
	h.renderPage(w, r, loc, templates.AirportsPage(view, page), loc.Sprintf("airports.title"))
}

func (h *Handler) handleAirportEdit(w http.ResponseWriter, r *http.Request, code string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	code = strings.TrimSpace(code)
	view := templates.AirportFormView{
		Heading:      loc.Sprintf("airports.edit.title", code),
		Action:       routepath.AirportsUpdate,
		Submit:       loc.Sprintf("action.save"),
		OriginalCode: code,
	}

	ctx, cancel := h.backendContext(r)
	defer cancel()

	status := http.StatusOK
	airports, err := h.api.ListAirports(ctx)
	if err != nil {
		h.log(r).Error("load airport for edit", zap.String("code", code), zap.Error(err))
		view.Missing = loc.Sprintf("airports.load_error")
	} else if airport, ok := findAirport(airports, code); ok {
		view.Code = airport.Code
		view.Name = airport.Name
		view.City = airport.City
		view.Lat = formatCoordinate(airport.Lat)
		view.Lng = formatCoordinate(airport.Lng)
	} else {
		view.Missing = loc.Sprintf("airports.not_found", code)
		status = http.StatusNotFound
	}
	htmx.RenderPageStatus(w, r, status, nil, templates.AirportEditPage(view, page), htmx.TitleTag(templates.PageTitle(loc, view.Heading)))
}

// findAirport matches codes case-insensitively.
func findAirport(airports []flightapi.Airport, code string) (flightapi.Airport, bool) {
	for _, airport := range airports {
		if strings.EqualFold(airport.Code, code) {
			return airport, true
		}
	}
	return flightapi.Airport{}, false
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func (h *Handler) handleAirportAdd(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	in := flightapi.AirportInputFromForm(r.PostForm, true)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	reply, err := h.api.AddAirport(ctx, in)
	h.recordBackendMutation(r, actionAirportAdd, in.Code, reply, err)
	if err != nil {
		redirectWithError(w, r, routepath.Airports, failureMessage(loc, err, "airports.add_failed", "airports.add_error"))
		return
	}
	redirectWithMessage(w, r, routepath.Airports, loc.Sprintf("airports.added"))
}

// handleAirportUpdate sends only the coordinates the operator filled in.
func (h *Handler) handleAirportUpdate(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	originalCode := strings.TrimSpace(r.PostForm.Get(flightapi.FieldOriginalCode))
	in := flightapi.AirportInputFromForm(r.PostForm, false)
	if originalCode == "" {
		originalCode = in.Code
	}

	ctx, cancel := h.backendContext(r)
	defer cancel()

	reply, err := h.api.UpdateAirport(ctx, originalCode, in)
	h.recordBackendMutation(r, actionAirportUpdate, originalCode, reply, err)
	if err != nil {
		redirectWithError(w, r, routepath.Airports, failureMessage(loc, err, "airports.update_failed", "airports.update_error"))
		return
	}
	redirectWithMessage(w, r, routepath.Airports, loc.Sprintf("airports.updated"))
}

func (h *Handler) handleAirportDelete(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	code := strings.TrimSpace(r.PostForm.Get(flightapi.FieldCode))

	ctx, cancel := h.backendContext(r)
	defer cancel()

	reply, err := h.api.DeleteAirport(ctx, code)
	h.recordBackendMutation(r, actionAirportDelete, code, reply, err)
	if err != nil {
		redirectWithError(w, r, routepath.Airports, failureMessage(loc, err, "airports.delete_failed", "airports.delete_error"))
		return
	}
	htmx.Redirect(w, r, routepath.Airports)
}

func addAirportForm(loc *message.Printer) templates.AirportFormView {
	return templates.AirportFormView{
		Heading: loc.Sprintf("airports.add.title"),
		Action:  routepath.AirportsAdd,
		Submit:  loc.Sprintf("action.add_airport"),
	}
}
