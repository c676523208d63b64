package admin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/aopps/admin-console/internal/platform/logging"
	"github.com/aopps/admin-console/internal/platform/timeouts"
	"github.com/aopps/admin-console/internal/services/admin/flash"
	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	"github.com/aopps/admin-console/internal/services/admin/i18n"
	airportsmodule "github.com/aopps/admin-console/internal/services/admin/module/airports"
	analyticsmodule "github.com/aopps/admin-console/internal/services/admin/module/analytics"
	bookingsmodule "github.com/aopps/admin-console/internal/services/admin/module/bookings"
	dashboardmodule "github.com/aopps/admin-console/internal/services/admin/module/dashboard"
	flightsmodule "github.com/aopps/admin-console/internal/services/admin/module/flights"
	legacymodule "github.com/aopps/admin-console/internal/services/admin/module/legacy"
	usersmodule "github.com/aopps/admin-console/internal/services/admin/module/users"
	"github.com/aopps/admin-console/internal/services/admin/storage"
	"github.com/aopps/admin-console/internal/services/admin/templates"
	"github.com/aopps/admin-console/internal/services/shared/htmx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

const (
	// flightsPageSize is the number of flights per page on the flights list.
	flightsPageSize = 10
	// recentFlightsLimit caps the dashboard recent flights table.
	recentFlightsLimit = 10
	// analyticsFlightsLimit bounds the flights scanned for distinct airlines.
	analyticsFlightsLimit = 2000
	// flightLookupLimit bounds the listing searched when opening an edit form.
	flightLookupLimit = 2000
	// activityFeedLimit caps the dashboard activity feed.
	activityFeedLimit = 5
	// auditFeedLimit caps the admin actions shown on the dashboard.
	auditFeedLimit = 5
)

// FlightAPI is the flight backend as seen by the console handlers.
type FlightAPI interface {
	Stats(ctx context.Context) (flightapi.Stats, error)
	ListFlights(ctx context.Context, params flightapi.ListFlightsParams) (flightapi.FlightPage, error)
	ListAirports(ctx context.Context) ([]flightapi.Airport, error)
	ListBookings(ctx context.Context) ([]flightapi.Booking, error)
	ListUsers(ctx context.Context) ([]flightapi.User, error)
	AddFlight(ctx context.Context, in flightapi.FlightInput) (string, error)
	UpdateFlight(ctx context.Context, originalID string, in flightapi.FlightInput) (string, error)
	DeleteFlight(ctx context.Context, id string) (string, error)
	AddAirport(ctx context.Context, in flightapi.AirportInput) (string, error)
	UpdateAirport(ctx context.Context, originalCode string, in flightapi.AirportInput) (string, error)
	DeleteAirport(ctx context.Context, code string) (string, error)
}

// HandlerConfig wires the handler dependencies. Only API is required.
type HandlerConfig struct {
	API FlightAPI
	// Audit records mutation attempts; nil disables the audit log.
	Audit   storage.AuditStore
	Metrics *Metrics
	Logger  *zap.Logger
	// SiteURL is the public booking site.
	SiteURL string
	// RequestTimeout caps each backend call made while serving a request.
	RequestTimeout time.Duration
}

// Handler routes admin console requests.
type Handler struct {
	api            FlightAPI
	audit          storage.AuditStore
	metrics        *Metrics
	logger         *zap.Logger
	siteURL        string
	requestTimeout time.Duration
}

// NewHandler builds the HTTP handler for the admin console.
func NewHandler(config HandlerConfig) http.Handler {
	return newHandler(config).routes()
}

func newHandler(config HandlerConfig) *Handler {
	logger := config.Logger
	if logger == nil {
		logger = logging.L()
	}
	requestTimeout := config.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = timeouts.APIRequest
	}
	return &Handler{
		api:            config.API,
		audit:          config.Audit,
		metrics:        config.Metrics,
		logger:         logger.Named("admin"),
		siteURL:        strings.TrimSpace(config.SiteURL),
		requestTimeout: requestTimeout,
	}
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	dashboardmodule.RegisterRoutes(mux, newDashboardModuleService(h))
	flightsmodule.RegisterRoutes(mux, newFlightsModuleService(h))
	airportsmodule.RegisterRoutes(mux, newAirportsModuleService(h))
	analyticsmodule.RegisterRoutes(mux, newAnalyticsModuleService(h))
	bookingsmodule.RegisterRoutes(mux, newBookingsModuleService(h))
	usersmodule.RegisterRoutes(mux, newUsersModuleService(h))
	legacymodule.RegisterRoutes(mux)

	return chi.Chain(
		middleware.RequestID,
		middleware.RealIP,
		h.accessLog,
		middleware.Recoverer,
	).Handler(mux)
}

// accessLog writes one entry per request once the response is complete.
func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			logging.Annotate(h.logger, r.Context()).Debug("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Bool("htmx", htmx.IsHTMXRequest(r)),
				zap.Duration("elapsed", time.Since(start)),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

// log returns the handler logger tagged with the request id and trace.
func (h *Handler) log(r *http.Request) *zap.Logger {
	logger := logging.Annotate(h.logger, r.Context())
	if id := middleware.GetReqID(r.Context()); id != "" {
		logger = logger.With(zap.String("request_id", id))
	}
	return logger
}

// backendContext bounds one round of backend calls for a request.
func (h *Handler) backendContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.requestTimeout)
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

// pageContext builds the layout context, consuming the flash left by a
// mutation redirect.
func (h *Handler) pageContext(w http.ResponseWriter, r *http.Request, lang string, loc *message.Printer) templates.PageContext {
	page := templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		SiteURL:      h.siteURL,
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		switch notice.Kind {
		case flash.KindError:
			page.Flash.Error = notice.Text
		default:
			page.Flash.Message = notice.Text
		}
	}
	return page
}

// handleNotFound renders the bare layout for unknown paths.
func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	htmx.RenderPageStatus(w, r, http.StatusNotFound, nil, templates.NotFoundPage(page), htmx.TitleTag(templates.PageTitle(loc, loc.Sprintf("page.not_found"))))
}

// renderPage renders a full page, or its <main> content for HTMX requests.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, full templ.Component, heading string) {
	htmx.RenderPage(w, r, nil, full, htmx.TitleTag(templates.PageTitle(loc, heading)))
}

// requirePost rejects anything but a same-origin POST and parses the form.
func (h *Handler) requirePost(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, loc.Sprintf("error.method_not_allowed"), http.StatusMethodNotAllowed)
		return false
	}
	if !requireSameOrigin(w, r, loc) {
		return false
	}
	if err := r.ParseForm(); err != nil {
		h.log(r).Warn("parse form", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, loc.Sprintf("error.bad_form"), http.StatusBadRequest)
		return false
	}
	return true
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.forbidden_origin"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.forbidden_origin"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.forbidden_origin"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.forbidden_origin"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
