package airports

import (
	"net/http"
	"strings"

	"github.com/aopps/admin-console/internal/services/admin/module/sharedpath"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
	sharedroute "github.com/aopps/admin-console/internal/services/shared/route"
)

// Service defines airport route handlers consumed by this route module.
type Service interface {
	HandleAirportsPage(w http.ResponseWriter, r *http.Request)
	HandleAirportAdd(w http.ResponseWriter, r *http.Request)
	HandleAirportUpdate(w http.ResponseWriter, r *http.Request)
	HandleAirportDelete(w http.ResponseWriter, r *http.Request)
	HandleAirportEdit(w http.ResponseWriter, r *http.Request, code string)
	HandleNotFound(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires airport routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Airports, service.HandleAirportsPage)
	mux.HandleFunc(routepath.AirportsAdd, service.HandleAirportAdd)
	mux.HandleFunc(routepath.AirportsUpdate, service.HandleAirportUpdate)
	mux.HandleFunc(routepath.AirportsDelete, service.HandleAirportDelete)
	mux.HandleFunc(routepath.AirportsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleAirportPath(w, r, service)
	})
}

// HandleAirportPath dispatches /airports/{code}/edit.
func HandleAirportPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	suffix := strings.TrimPrefix(r.URL.EscapedPath(), routepath.AirportsPrefix)
	if code, ok := sharedpath.EditKey(suffix); ok {
		service.HandleAirportEdit(w, r, code)
		return
	}
	service.HandleNotFound(w, r)
}
