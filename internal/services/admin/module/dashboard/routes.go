package dashboard

import (
	"net/http"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
	sharedroute "github.com/aopps/admin-console/internal/services/shared/route"
)

// Service defines dashboard route handlers consumed by this route module.
type Service interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleNotFound(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires the dashboard into the root pattern. Every path no
// other module claims lands here and gets the not-found page.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == routepath.Root {
			service.HandleDashboard(w, r)
			return
		}
		if sharedroute.RedirectTrailingSlash(w, r) {
			return
		}
		service.HandleNotFound(w, r)
	})
}
