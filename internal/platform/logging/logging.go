// Package logging builds the process zap logger and attaches trace context.
package logging

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Options configure the process logger.
type Options struct {
	// Service is attached to every entry as the "service" field.
	Service string
	// Level is a zap level name: debug, info, warn or error.
	Level string
	// Development switches to the console encoder.
	Development bool
}

// New builds a zap logger from options.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", raw, err)
		}
	}

	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if service := strings.TrimSpace(opts.Service); service != "" {
		cfg.InitialFields = map[string]any{"service": service}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// SetGlobal replaces the process logger. A nil logger resets to a no-op.
func SetGlobal(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mu.Lock()
	global = logger
	mu.Unlock()
}

// L returns the process logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// WithTrace returns the process logger annotated with the active span ids.
func WithTrace(ctx context.Context) *zap.Logger {
	return Annotate(L(), ctx)
}

// Annotate adds trace_id and span_id fields when ctx carries a valid span.
func Annotate(logger *zap.Logger, ctx context.Context) *zap.Logger {
	if logger == nil {
		logger = L()
	}
	if ctx == nil {
		return logger
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}
