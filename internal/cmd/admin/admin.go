// Package admin parses admin console flags and starts the console server.
package admin

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/aopps/admin-console/internal/platform/cmd"
	"github.com/aopps/admin-console/internal/services/admin"
	"go.uber.org/zap"
)

// Config holds the admin command configuration. Environment variables carry
// the AOPPS_ prefix, e.g. AOPPS_ADMIN_ADDR.
type Config struct {
	HTTPAddr   string        `env:"ADMIN_ADDR"    envDefault:":8082"`
	APIURL     string        `env:"API_URL"       envDefault:"https://daa-project-1-7w2x.onrender.com"`
	SiteURL    string        `env:"SITE_URL"      envDefault:"/"`
	DBPath     string        `env:"ADMIN_DB_PATH" envDefault:"data/admin.db"`
	APITimeout time.Duration `env:"API_TIMEOUT"   envDefault:"10s"`
	LogLevel   string        `env:"LOG_LEVEL"     envDefault:"info"`
	LogDev     bool          `env:"LOG_DEV"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.Load(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	if cfg.APITimeout <= 0 {
		return Config{}, fmt.Errorf("api timeout must be positive, got %s", cfg.APITimeout)
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "flight API base URL")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "public booking site URL")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the audit log database")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "timeout for each flight API call")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "human-readable console logs")
}

// Run starts the admin console and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	opts := entrypoint.RunOptions{
		Service:        entrypoint.ServiceAdmin,
		LogLevel:       cfg.LogLevel,
		LogDevelopment: cfg.LogDev,
	}
	return entrypoint.Run(ctx, opts, func(ctx context.Context, logger *zap.Logger) error {
		server, err := admin.NewServer(ctx, admin.Config{
			HTTPAddr:   cfg.HTTPAddr,
			APIURL:     cfg.APIURL,
			SiteURL:    cfg.SiteURL,
			DBPath:     cfg.DBPath,
			APITimeout: cfg.APITimeout,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			logger.Error("admin server stopped", zap.Error(err))
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}
