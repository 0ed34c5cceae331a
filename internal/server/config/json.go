package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// jsonConfig is an intermediate DTO for reading JSON configuration files.
// Durations are accepted as Go duration strings ("24h", "90m"). After
// unmarshalling, its fields are copied into the runtime Config.
type jsonConfig struct {
	EndpointAddr  string `json:"endpoint_addr"`
	DatabaseDSN   string `json:"database_dsn"`
	SecretKey     string `json:"secret_key"`
	TokenValidity string `json:"token_validity"`
}

// parseJSON loads configuration values from a JSON file into cfg.
//
// The file path is taken from the -c flag (either "-c path" or "-c=path"
// form) or, failing that, from the AUTH_CONFIG environment variable. When no
// path is found nothing is loaded. Empty JSON fields leave the current value
// in place so the file can be partial.
func parseJSON(cfg *Config, args []string, getenv func(string) string) error {
	path := jsonConfigPath(args, getenv)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if c.EndpointAddr != "" {
		cfg.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		cfg.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		cfg.SecretKey = c.SecretKey
	}
	if c.TokenValidity != "" {
		d, err := time.ParseDuration(c.TokenValidity)
		if err != nil {
			return fmt.Errorf("config file %s: token_validity: %w", path, err)
		}
		cfg.TokenValidityDuration = d
	}
	return nil
}

// jsonConfigPath scans args for the -c flag without disturbing the main flag
// set; parseFlags registers -c too so flag parsing accepts it later.
func jsonConfigPath(args []string, getenv func(string) string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "-c" || arg == "--c" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if strings.HasPrefix(arg, "-c=") {
			return strings.TrimPrefix(arg, "-c=")
		}
		if strings.HasPrefix(arg, "--c=") {
			return strings.TrimPrefix(arg, "--c=")
		}
	}
	return getenv("AUTH_CONFIG")
}
