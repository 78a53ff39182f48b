// Package config loads queryc's runtime configuration: which database
// primitive backend to compile for and, for the optional provisioning
// glue in package db, how to reach it.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds queryc's runtime configuration.
type Config struct {
	// Backend selects the primitives.Backend to compile against:
	// "postgres", "mysql" or "sqlite".
	Backend string
	// DSN is the connection string for the optional schema-provisioning
	// glue in package db. The compiler itself never dials out with it.
	DSN string
	// Debug turns on gorm's statement logger for provisioning calls.
	Debug bool
}

// LoadConfig loads configuration from the environment, first seeding it
// from a .env file in the working directory if one is present. A missing
// .env file is not an error — production deployments set the environment
// directly.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Backend: os.Getenv("QUERYC_BACKEND"),
		DSN:     os.Getenv("QUERYC_DSN"),
		Debug:   os.Getenv("QUERYC_DEBUG") == "true" || os.Getenv("QUERYC_DEBUG") == "1",
	}

	if cfg.Backend == "" {
		cfg.Backend = "postgres"
	}

	return cfg
}

// Validate reports whether the backend name is one queryc knows how to
// build a primitives.Backend for.
func (c *Config) Validate() error {
	switch c.Backend {
	case "postgres", "mysql", "sqlite":
		return nil
	default:
		return fmt.Errorf("config: unknown backend %q (want postgres, mysql or sqlite)", c.Backend)
	}
}
