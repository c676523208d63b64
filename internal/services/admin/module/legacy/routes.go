// Package legacy keeps the page names of the old static admin pages working.
package legacy

import (
	"net/http"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
	sharedroute "github.com/aopps/admin-console/internal/services/shared/route"
)

// Pages maps the old static page names to their routes.
var Pages = map[string]string{
	"/admin.html":           routepath.Root,
	"/admin-flights.html":   routepath.Flights,
	"/admin-airports.html":  routepath.Airports,
	"/admin-analytics.html": routepath.Analytics,
	"/admin-bookings.html":  routepath.Bookings,
	"/admin-users.html":     routepath.Users,
}

// RegisterRoutes wires permanent redirects for every legacy page.
func RegisterRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	for legacyPath, target := range Pages {
		target := target
		mux.HandleFunc(legacyPath, func(w http.ResponseWriter, r *http.Request) {
			sharedroute.RedirectPermanent(w, r, target)
		})
	}
}
