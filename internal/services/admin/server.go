package admin

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aopps/admin-console/internal/platform/logging"
	"github.com/aopps/admin-console/internal/platform/timeouts"
	"github.com/aopps/admin-console/internal/services/admin/flightapi"
	integrationstorage "github.com/aopps/admin-console/internal/services/admin/integration/storage"
	"github.com/aopps/admin-console/internal/services/admin/static"
	"github.com/aopps/admin-console/internal/services/admin/storage"
	"github.com/aopps/admin-console/internal/services/admin/transport/httpmux"
	"go.uber.org/zap"
)

// Config defines the inputs for the admin console process.
type Config struct {
	HTTPAddr string
	// APIURL is the flight API origin.
	APIURL string
	// SiteURL is the public booking site linked from the sidebar and tickets.
	SiteURL string
	// DBPath locates the SQLite audit log.
	DBPath     string
	APITimeout time.Duration
	Logger     *zap.Logger
}

// Server hosts the admin console.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	adminStore storage.Store
	logger     *zap.Logger
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.APIURL) == "" {
		config.APIURL = flightapi.DefaultBaseURL
	}
	if config.APITimeout <= 0 {
		config.APITimeout = timeouts.APIRequest
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.L()
	}

	metrics := NewMetrics()
	client, err := flightapi.New(config.APIURL,
		flightapi.WithHTTPClient(&http.Client{Timeout: config.APITimeout}),
		flightapi.WithObserver(metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("create flight api client: %w", err)
	}

	adminStore, err := integrationstorage.OpenStore(config.DBPath)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(HandlerConfig{
		API:            client,
		Audit:          adminStore,
		Metrics:        metrics,
		Logger:         logger,
		SiteURL:        config.SiteURL,
		RequestTimeout: config.APITimeout,
	})

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS, nil)
	httpmux.MountOps(rootMux, metrics.Handler())
	httpmux.MountAdminRoutes(rootMux, handler)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           rootMux,
		ReadHeaderTimeout: timeouts.ReadHeader,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	logger.Info("admin console configured",
		zap.String("http_addr", httpAddr),
		zap.String("api_url", client.BaseURL()),
		zap.String("db_path", config.DBPath),
		zap.Duration("api_timeout", config.APITimeout),
	)

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		adminStore: adminStore,
		logger:     logger,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	s.logger.Info("admin listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the audit store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			s.logger.Warn("close admin store", zap.Error(err))
		}
	}
}
