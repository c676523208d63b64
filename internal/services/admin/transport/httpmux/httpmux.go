// Package httpmux assembles the root mux of the admin console.
package httpmux

import (
	"io/fs"
	"net/http"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountOps wires the liveness check and, when set, the metrics endpoint.
func MountOps(rootMux *http.ServeMux, metrics http.Handler) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc(routepath.Healthz, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte("ok\n"))
	})
	if metrics != nil {
		rootMux.Handle(routepath.Metrics, metrics)
	}
}

// MountAdminRoutes mounts admin application routes under root path.
func MountAdminRoutes(rootMux *http.ServeMux, adminMux http.Handler) {
	if rootMux == nil || adminMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, adminMux)
}
