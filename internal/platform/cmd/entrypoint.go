// Package cmd holds the startup sequence shared by console commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/aopps/admin-console/internal/platform/config"
	"github.com/aopps/admin-console/internal/platform/logging"
	"github.com/aopps/admin-console/internal/platform/otel"
	"github.com/aopps/admin-console/internal/platform/timeouts"
	"go.uber.org/zap"
)

// ServiceAdmin names the admin console process in telemetry and logs.
const ServiceAdmin = "aopps-admin"

// BindFlags registers flags on fs that default to the values already in cfg.
type BindFlags[T any] func(fs *flag.FlagSet, cfg *T)

// Load fills cfg from AOPPS_ environment variables, binds flags over those
// values and parses args. Flags given on the command line win.
func Load[T any](cfg *T, fs *flag.FlagSet, args []string, bind BindFlags[T]) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag set is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

// RunOptions describes the process Run starts.
type RunOptions struct {
	Service        string
	LogLevel       string
	LogDevelopment bool
	// TelemetryShutdown bounds the final span flush. Zero means
	// timeouts.TelemetryShutdown.
	TelemetryShutdown time.Duration
}

// Run installs the process logger and tracing, then calls run with the
// logger. Spans are flushed and the logger synced once run returns.
func Run(ctx context.Context, opts RunOptions, run func(context.Context, *zap.Logger) error) error {
	service := strings.TrimSpace(opts.Service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}

	logger, err := logging.New(logging.Options{
		Service:     service,
		Level:       opts.LogLevel,
		Development: opts.LogDevelopment,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logging.SetGlobal(logger)
	defer func() { _ = logger.Sync() }()

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer flushTelemetry(ctx, service, shutdown, opts.TelemetryShutdown)

	return run(ctx, logger)
}

func flushTelemetry(ctx context.Context, service string, shutdown func(context.Context) error, timeout time.Duration) {
	if timeout <= 0 {
		timeout = timeouts.TelemetryShutdown
	}
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := shutdown(flushCtx); err != nil {
		logging.WithTrace(ctx).Warn("otel shutdown", zap.String("service", service), zap.Error(err))
	}
}
