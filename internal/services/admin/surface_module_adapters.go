package admin

import (
	"net/http"

	airportsmodule "github.com/aopps/admin-console/internal/services/admin/module/airports"
	analyticsmodule "github.com/aopps/admin-console/internal/services/admin/module/analytics"
	bookingsmodule "github.com/aopps/admin-console/internal/services/admin/module/bookings"
	dashboardmodule "github.com/aopps/admin-console/internal/services/admin/module/dashboard"
	flightsmodule "github.com/aopps/admin-console/internal/services/admin/module/flights"
	usersmodule "github.com/aopps/admin-console/internal/services/admin/module/users"
)

type dashboardModuleService struct {
	handler *Handler
}

func newDashboardModuleService(h *Handler) dashboardmodule.Service {
	if h == nil {
		return nil
	}
	return dashboardModuleService{handler: h}
}

func (s dashboardModuleService) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboard(w, r)
}

func (s dashboardModuleService) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	s.handler.handleNotFound(w, r)
}

type flightsModuleService struct {
	handler *Handler
}

func newFlightsModuleService(h *Handler) flightsmodule.Service {
	if h == nil {
		return nil
	}
	return flightsModuleService{handler: h}
}

func (s flightsModuleService) HandleFlightsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFlightsPage(w, r)
}

func (s flightsModuleService) HandleFlightsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFlightsTable(w, r)
}

func (s flightsModuleService) HandleFlightAdd(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFlightAdd(w, r)
}

func (s flightsModuleService) HandleFlightUpdate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFlightUpdate(w, r)
}

func (s flightsModuleService) HandleFlightDelete(w http.ResponseWriter, r *http.Request) {
	s.handler.handleFlightDelete(w, r)
}

func (s flightsModuleService) HandleFlightEdit(w http.ResponseWriter, r *http.Request, flightID string) {
	s.handler.handleFlightEdit(w, r, flightID)
}

func (s flightsModuleService) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	s.handler.handleNotFound(w, r)
}

type airportsModuleService struct {
	handler *Handler
}

func newAirportsModuleService(h *Handler) airportsmodule.Service {
	if h == nil {
		return nil
	}
	return airportsModuleService{handler: h}
}

func (s airportsModuleService) HandleAirportsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAirportsPage(w, r)
}

func (s airportsModuleService) HandleAirportAdd(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAirportAdd(w, r)
}

func (s airportsModuleService) HandleAirportUpdate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAirportUpdate(w, r)
}

func (s airportsModuleService) HandleAirportDelete(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAirportDelete(w, r)
}

func (s airportsModuleService) HandleAirportEdit(w http.ResponseWriter, r *http.Request, code string) {
	s.handler.handleAirportEdit(w, r, code)
}

func (s airportsModuleService) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	s.handler.handleNotFound(w, r)
}

type analyticsModuleService struct {
	handler *Handler
}

func newAnalyticsModuleService(h *Handler) analyticsmodule.Service {
	if h == nil {
		return nil
	}
	return analyticsModuleService{handler: h}
}

func (s analyticsModuleService) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAnalytics(w, r)
}

type bookingsModuleService struct {
	handler *Handler
}

func newBookingsModuleService(h *Handler) bookingsmodule.Service {
	if h == nil {
		return nil
	}
	return bookingsModuleService{handler: h}
}

func (s bookingsModuleService) HandleBookingsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleBookingsPage(w, r)
}

func (s bookingsModuleService) HandleBookingCancel(w http.ResponseWriter, r *http.Request) {
	s.handler.handleBookingCancel(w, r)
}

type usersModuleService struct {
	handler *Handler
}

func newUsersModuleService(h *Handler) usersmodule.Service {
	if h == nil {
		return nil
	}
	return usersModuleService{handler: h}
}

func (s usersModuleService) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUsersPage(w, r)
}

func (s usersModuleService) HandleUserDelete(w http.ResponseWriter, r *http.Request) {
	s.handler.handleUserDelete(w, r)
}
