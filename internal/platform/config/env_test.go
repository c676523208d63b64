package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"3s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("expected default timeout 3s, got %v", cfg.Timeout)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_PORT", "999")
	t.Setenv("AOPPS_TEST_PORT", "456")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 456 {
		t.Fatalf("expected prefixed port 456, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("AOPPS_TEST_PORT", "not-an-int")
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
