package config

import (
	"flag"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN; pass -d "" to run with the in-memory store
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-c string   path to a JSON config file (read by parseJSON)
//
// Only flags that were actually set on the command line override earlier
// layers, so defaults, JSON, and environment values survive untouched flags.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	addr := fs.String("a", cfg.EndpointAddr, "address and port to run server")
	dsn := fs.String("d", cfg.DatabaseDSN, "database DSN (empty selects the in-memory store)")
	secret := fs.String("s", cfg.SecretKey, "secret key for signing tokens")
	validity := fs.Int("t", int(cfg.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.String("c", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.EndpointAddr = *addr
		case "d":
			cfg.DatabaseDSN = *dsn
		case "s":
			cfg.SecretKey = *secret
		case "t":
			cfg.TokenValidityDuration = time.Duration(*validity) * time.Minute
		}
	})

	return nil
}
