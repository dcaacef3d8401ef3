package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// variables already exported win over the file.
//
// Recognized variables:
//
//	COVERMATE_BASE_URL        — backend root URL
//	COVERMATE_REQUEST_TIMEOUT — round-trip bound, time.ParseDuration syntax
//	COVERMATE_DATABASE_PATH   — settings database location
//
// Unset variables leave the current value untouched; a malformed
// timeout is ignored rather than aborting startup.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("COVERMATE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COVERMATE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("COVERMATE_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
