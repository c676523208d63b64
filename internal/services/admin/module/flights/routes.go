package flights

import (
	"net/http"
	"strings"

	"github.com/aopps/admin-console/internal/services/admin/module/sharedpath"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
	sharedroute "github.com/aopps/admin-console/internal/services/shared/route"
)

// Service defines flight route handlers consumed by this route module.
type Service interface {
	HandleFlightsPage(w http.ResponseWriter, r *http.Request)
	HandleFlightsTable(w http.ResponseWriter, r *http.Request)
	HandleFlightAdd(w http.ResponseWriter, r *http.Request)
	HandleFlightUpdate(w http.ResponseWriter, r *http.Request)
	HandleFlightDelete(w http.ResponseWriter, r *http.Request)
	HandleFlightEdit(w http.ResponseWriter, r *http.Request, flightID string)
	HandleNotFound(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires flight routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Flights, service.HandleFlightsPage)
	mux.HandleFunc(routepath.FlightsTable, service.HandleFlightsTable)
	mux.HandleFunc(routepath.FlightsAdd, service.HandleFlightAdd)
	mux.HandleFunc(routepath.FlightsUpdate, service.HandleFlightUpdate)
	mux.HandleFunc(routepath.FlightsDelete, service.HandleFlightDelete)
	mux.HandleFunc(routepath.FlightsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleFlightPath(w, r, service)
	})
}

// HandleFlightPath dispatches /flights/{id}/edit.
func HandleFlightPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	suffix := strings.TrimPrefix(r.URL.EscapedPath(), routepath.FlightsPrefix)
	if flightID, ok := sharedpath.EditKey(suffix); ok {
		service.HandleFlightEdit(w, r, flightID)
		return
	}
	service.HandleNotFound(w, r)
}
