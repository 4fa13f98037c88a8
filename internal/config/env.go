package config

import (
	"os"
	"strconv"
	"time"
)

// Supported environment variables. main loads a .env file (if present) into
// the environment before LoadConfig runs, so these work from either place.
const (
	envDataFile      = "SKILLTRACK_DATA_FILE"
	envHTTPTimeout   = "SKILLTRACK_HTTP_TIMEOUT"
	envHeadlineLimit = "SKILLTRACK_HEADLINE_LIMIT"
)

// parseEnv overlays cfg with values from environment variables. Unset or
// unparseable values leave the current setting untouched.
func parseEnv(cfg *Config) {
	if v := os.Getenv(envDataFile); v != "" {
		cfg.DataFilePath = v
	}
	if v := os.Getenv(envHTTPTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envHeadlineLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HeadlineLimit = n
		}
	}
}
