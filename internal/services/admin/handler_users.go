package admin

import (
	"net/http"
	"strings"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
	"github.com/aopps/admin-console/internal/services/admin/storage"
	"github.com/aopps/admin-console/internal/services/admin/templates"
	"go.uber.org/zap"
)

// handleUsersPage renders the users page.
func (h *Handler) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	view := templates.UsersView{}
	users, err := h.api.ListUsers(ctx)
	if err != nil {
		h.log(r).Error("list users", zap.Error(err))
		view.Notice = loc.Sprintf("users.load_error")
	} else {
		view.Rows = buildUserRows(users, loc)
	}
	h.renderPage(w, r, loc, templates.UsersPage(view, page), loc.Sprintf("users.title"))
}

// handleUserDelete only records the attempt; user deletion is not exposed
// by the backend.
func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	userID := strings.TrimSpace(r.PostForm.Get(templates.UserIDField))
	msg := loc.Sprintf("users.delete_simulated")
	h.recordMutation(r, actionUserDelete, userID, storage.OutcomeSimulated, msg)
	redirectWithMessage(w, r, routepath.Users, msg)
}
