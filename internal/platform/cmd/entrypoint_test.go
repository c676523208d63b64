package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type loadConfig struct {
	Address string        `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string        `env:"CMD_TEST_MODE" envDefault:"server"`
	Wait    time.Duration `env:"CMD_TEST_WAIT" envDefault:"1s"`
}

func bindLoadConfig(fs *flag.FlagSet, cfg *loadConfig) {
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
	fs.DurationVar(&cfg.Wait, "wait", cfg.Wait, "wait")
}

func TestLoadLayersFlagsOverEnv(t *testing.T) {
	t.Setenv("AOPPS_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("AOPPS_CMD_TEST_MODE", "env-mode")

	tests := []struct {
		name string
		args []string
		want loadConfig
	}{
		{
			name: "env only",
			args: nil,
			want: loadConfig{Address: "env:9000", Mode: "env-mode", Wait: time.Second},
		},
		{
			name: "flag overrides env",
			args: []string{"-address", "flag:9001", "-wait", "250ms"},
			want: loadConfig{Address: "flag:9001", Mode: "env-mode", Wait: 250 * time.Millisecond},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			var cfg loadConfig
			if err := Load(&cfg, fs, tc.args, bindLoadConfig); err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg != tc.want {
				t.Fatalf("cfg = %+v, want %+v", cfg, tc.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := Load[loadConfig](nil, fs, nil, nil); err == nil {
		t.Fatal("expected nil target error")
	}
	if err := Load(&loadConfig{}, nil, nil, nil); err == nil {
		t.Fatal("expected nil flag set error")
	}
	err := Load(&loadConfig{}, fs, []string{"-unknown"}, bindLoadConfig)
	if err == nil || !strings.Contains(err.Error(), "parse flags") {
		t.Fatalf("err = %v, want parse flags error", err)
	}

	t.Setenv("AOPPS_CMD_TEST_WAIT", "soon")
	fresh := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := Load(&loadConfig{}, fresh, nil, bindLoadConfig); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestRunValidatesOptions(t *testing.T) {
	noop := func(context.Context, *zap.Logger) error { return nil }

	if err := Run(context.Background(), RunOptions{Service: " "}, noop); err == nil {
		t.Fatal("expected error for blank service")
	}
	if err := Run(context.Background(), RunOptions{Service: ServiceAdmin}, nil); err == nil {
		t.Fatal("expected error for nil run")
	}
	err := Run(context.Background(), RunOptions{Service: ServiceAdmin, LogLevel: "chatty"}, noop)
	if err == nil || !strings.Contains(err.Error(), "init logger") {
		t.Fatalf("err = %v, want init logger error", err)
	}
}

func TestRunPassesLoggerAndReturnsRunError(t *testing.T) {
	t.Setenv("AOPPS_OTEL_ENDPOINT", "")
	wantErr := errors.New("boom")

	var gotLogger *zap.Logger
	err := Run(context.Background(), RunOptions{Service: ServiceAdmin, LogLevel: "error"}, func(_ context.Context, logger *zap.Logger) error {
		gotLogger = logger
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if gotLogger == nil {
		t.Fatal("run received nil logger")
	}
}
