// Package config loads runtime configuration for the skilltrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv); main may seed them from a .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the JSON data file
//	-t int      HTTP timeout for feed requests (seconds)
//	-n int      number of headlines to fetch
package config

import "time"

// Config holds runtime settings for the skilltrack CLI.
type Config struct {
	DataFilePath  string
	HTTPTimeout   time.Duration
	HeadlineLimit int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataFilePath = "skilltrack.json"
	c.HTTPTimeout = 12 * time.Second
	c.HeadlineLimit = 5
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
