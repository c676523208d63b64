package admin

import (
	"net/http"
	"strings"

	"github.com/aopps/admin-console/internal/services/admin/routepath"
	"github.com/aopps/admin-console/internal/services/admin/storage"
	"github.com/aopps/admin-console/internal/services/admin/templates"
	"go.uber.org/zap"
)

func (h *Handler) handleBookingsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	view := templates.BookingsView{}
	bookings, err := h.api.ListBookings(ctx)
	if err != nil {
		h.log(r).Error("list bookings", zap.Error(err))
		view.Notice = loc.Sprintf("bookings.load_error")
	} else {
		view.Rows = buildBookingRows(sortBookingsNewestFirst(bookings), page)
	}
	h.renderPage(w, r, loc, templates.BookingsPage(view, page), loc.Sprintf("bookings.title"))
}

// handleBookingCancel is a placeholder: the backend has no cancel endpoint,
// so nothing is sent and the attempt is only recorded.
func (h *Handler) handleBookingCancel(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !h.requirePost(w, r, loc) {
		return
	}
	bookingID := strings.TrimSpace(r.PostForm.Get(templates.BookingIDField))
	msg := loc.Sprintf("bookings.cancel_simulated")
	h.recordMutation(r, actionBookingCancel, bookingID, storage.OutcomeSimulated, msg)
	redirectWithMessage(w, r, routepath.Bookings, msg)
}
