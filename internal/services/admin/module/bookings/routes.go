package bookings

import (
	"net/http"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// Service defines booking route handlers consumed by this route module.
type Service interface {
	HandleBookingsPage(w http.ResponseWriter, r *http.Request)
	HandleBookingCancel(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires booking routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Bookings, service.HandleBookingsPage)
	mux.HandleFunc(routepath.BookingsCancel, service.HandleBookingCancel)
}
