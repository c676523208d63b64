package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the console.
const EnvPrefix = "AOPPS_"

// ParseEnv loads configuration from AOPPS_-prefixed environment variables.
//
// Struct tags name the variable without the prefix, so `env:"ADMIN_ADDR"`
// reads AOPPS_ADMIN_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
