package config

import (
	"fmt"
	"time"
)

// parseEnv overlays Config fields from environment variables:
//
//	AUTH_ADDRESS         HTTP bind address
//	AUTH_DATABASE_DSN    PostgreSQL DSN
//	AUTH_SECRET_KEY      JWT HMAC secret key
//	AUTH_TOKEN_VALIDITY  token validity as a Go duration ("24h", "90m")
//
// Unset variables leave the current value in place.
func parseEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("AUTH_ADDRESS"); v != "" {
		cfg.EndpointAddr = v
	}
	if v := getenv("AUTH_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := getenv("AUTH_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := getenv("AUTH_TOKEN_VALIDITY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("AUTH_TOKEN_VALIDITY: %w", err)
		}
		cfg.TokenValidityDuration = d
	}
	return nil
}
