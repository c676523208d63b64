package admin

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/templates"
	"go.uber.org/zap"
)

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)

	ctx, cancel := h.backendContext(r)
	defer cancel()

	view := templates.AnalyticsView{}
	stats, flights, err := h.loadAnalytics(ctx)
	if err != nil {
		h.log(r).Error("load analytics", zap.Error(err))
		view.Notice = loc.Sprintf("analytics.load_error")
		h.renderPage(w, r, loc, templates.AnalyticsPage(view, page), loc.Sprintf("analytics.title"))
		return
	}

	popular := strings.TrimSpace(stats.PopularRoute)
	if popular == "" {
		popular = loc.Sprintf("common.na")
	}
	view.CheapestPrice = formatCurrency(loc, stats.CheapestPrice)
	view.ExpensivePrice = formatCurrency(loc, stats.ExpensivePrice)
	view.PopularRoute = popular
	view.Passengers = loc.Sprintf("analytics.passengers", stats.PopularRouteCount)
	view.AirlinesCount = formatCount(loc, countAirlines(flights))
	h.renderPage(w, r, loc, templates.AnalyticsPage(view, page), loc.Sprintf("analytics.title"))
}

// loadAnalytics fetches the stats and then the flights used for the airline
// count. Nothing is returned unless both succeed.
func (h *Handler) loadAnalytics(ctx context.Context) (flightapi.Stats, []flightapi.Flight, error) {
	stats, err := h.api.Stats(ctx)
	if err != nil {
		return flightapi.Stats{}, nil, fmt.Errorf("load stats: %w", err)
	}
	page, err := h.api.ListFlights(ctx, flightapi.ListFlightsParams{Limit: analyticsFlightsLimit})
	if err != nil {
		return flightapi.Stats{}, nil, fmt.Errorf("load flights: %w", err)
	}
	return stats, page.Flights, nil
}
