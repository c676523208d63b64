package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// dashboardData is everything the dashboard fetches from the backend.
type dashboardData struct {
	stats    flightapi.Stats
	flights  []flightapi.Flight
	airports []flightapi.Airport
	bookings []flightapi.Booking
}

// loadDashboard fetches the stats, then the recent flights, airports and
// bookings concurrently. Any failure discards everything fetched.
func (h *Handler) loadDashboard(ctx context.Context) (dashboardData, error) {
	var data dashboardData
	stats, err := h.api.Stats(ctx)
	if err != nil {
		return dashboardData{}, fmt.Errorf("load stats: %w", err)
	}
	data.stats = stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := h.api.ListFlights(gctx, flightapi.ListFlightsParams{Limit: recentFlightsLimit})
		if err != nil {
			return err
		}
		data.flights = page.Flights
		return nil
	})
	g.Go(func() error {
		airports, err := h.api.ListAirports(gctx)
		if err != nil {
			return err
		}
		data.airports = airports
		return nil
	})
	g.Go(func() error {
		bookings, err := h.api.ListBookings(gctx)
		if err != nil {
			return err
		}
		data.bookings = bookings
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboardData{}, err
	}
	return data, nil
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	view := templates.DashboardView{}
	if data, err := h.loadDashboard(ctx); err != nil {
		h.log(r).Error("load dashboard", zap.Error(err))
		view.Notice = loc.Sprintf("dashboard.load_error")
	} else {
		view.Stats = buildDashboardStats(data.stats, loc)
		view.RecentFlights = buildFlightRows(data.flights, loc)
		view.Activity = buildActivity(data.bookings, loc)
	}
	view.Audit = h.recentAudit(r)

	h.renderPage(w, r, loc, templates.DashboardPage(view, page), loc.Sprintf("dashboard.title"))
}

// recentAudit returns the latest admin actions, or nil when the audit log
// is unavailable.
func (h *Handler) recentAudit(r *http.Request) []templates.AuditRow {
	if h.audit == nil {
		return nil
	}
	entries, err := h.audit.ListRecentActions(r.Context(), auditFeedLimit)
	if err != nil {
		h.log(r).Warn("list audit entries", zap.Error(err))
		return nil
	}
	return buildAuditRows(entries)
}
