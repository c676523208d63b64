package admin

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/aopps/admin-console/internal/platform/timeouts"
	"github.com/aopps/admin-console/internal/services/admin/flash"
	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
	"github.com/aopps/admin-console/internal/services/admin/storage"
	"github.com/aopps/admin-console/internal/services/shared/htmx"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

// Audit actions recorded for console mutations.
const (
	actionFlightAdd     = "flight.add"
	actionFlightUpdate  = "flight.update"
	actionFlightDelete  = "flight.delete"
	actionAirportAdd    = "airport.add"
	actionAirportUpdate = "airport.update"
	actionAirportDelete = "airport.delete"
	actionBookingCancel = "booking.cancel"
	actionUserDelete    = "user.delete"
)

// parsePage reads the page query parameter. Missing, unparsable and
// non-positive values become 1.
func parsePage(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get(routepath.PageParam))
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseSearch reads the search term as typed. A blank term reads as "".
func parseSearch(r *http.Request) string {
	raw := r.URL.Query().Get(routepath.SearchParam)
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return raw
}

// redirectWithMessage sends the browser back to path with a confirmation flash.
func redirectWithMessage(w http.ResponseWriter, r *http.Request, path string, msg string) {
	flash.Write(w, r, flash.Success(msg))
	htmx.Redirect(w, r, path)
}

// redirectWithError sends the browser back to path with an error flash.
func redirectWithError(w http.ResponseWriter, r *http.Request, path string, msg string) {
	flash.Write(w, r, flash.Failure(msg))
	htmx.Redirect(w, r, path)
}

// mutationOutcome classifies a backend mutation result for audit and metrics.
func mutationOutcome(err error) string {
	if err == nil {
		return storage.OutcomeSuccess
	}
	if _, ok := flightapi.AsStatusError(err); ok {
		return storage.OutcomeRejected
	}
	return storage.OutcomeFailed
}

// failureMessage picks the rejected text for non-2xx answers and the
// transport text for everything else.
func failureMessage(loc *message.Printer, err error, rejected message.Reference, transport message.Reference, args ...any) string {
	if _, ok := flightapi.AsStatusError(err); ok {
		return loc.Sprintf(rejected, args...)
	}
	return loc.Sprintf(transport)
}

// recordMutation counts the attempt and appends it to the audit log.
// Audit failures are logged and never change the response.
func (h *Handler) recordMutation(r *http.Request, action string, target string, outcome string, detail string) {
	h.metrics.ObserveMutation(action, outcome)
	if h.audit == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), timeouts.AuditWrite)
	defer cancel()
	entry := storage.AuditEntry{
		Action:  action,
		Target:  strings.TrimSpace(target),
		Outcome: outcome,
		Detail:  strings.TrimSpace(detail),
	}
	if err := h.audit.RecordAction(ctx, entry); err != nil {
		h.log(r).Warn("record audit entry", zap.String("action", action), zap.Error(err))
	}
}

// recordBackendMutation logs a failed call and records the attempt.
func (h *Handler) recordBackendMutation(r *http.Request, action string, target string, reply string, err error) {
	detail := reply
	if err != nil {
		detail = err.Error()
		h.log(r).Warn("flight api mutation failed",
			zap.String("action", action),
			zap.String("target", target),
			zap.Error(err),
		)
	}
	h.recordMutation(r, action, target, mutationOutcome(err), detail)
}
