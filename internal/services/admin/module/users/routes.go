package users

import (
	"net/http"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// Service serves the registered-users listing. Deleting a user is simulated
// by the handler; the flight API has no such endpoint.
type Service interface {
	HandleUsersPage(w http.ResponseWriter, r *http.Request)
	HandleUserDelete(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes mounts the listing and the delete action. Other paths under
// /users fall through to the root not-found page.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	routes := []struct {
		pattern string
		handle  http.HandlerFunc
	}{
		{routepath.Users, service.HandleUsersPage},
		{routepath.UsersDelete, service.HandleUserDelete},
	}
	for _, route := range routes {
		mux.Handle(route.pattern, route.handle)
	}
}
