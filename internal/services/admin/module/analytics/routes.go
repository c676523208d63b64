package analytics

import (
	"net/http"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// Service defines analytics route handlers consumed by this route module.
type Service interface {
	HandleAnalytics(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires analytics routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Analytics, service.HandleAnalytics)
}
