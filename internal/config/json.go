package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmarques/skilltrack/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero so the file only overrides what it sets.
type JsonConfig struct {
	DataFile           *string `json:"data_file"`
	HTTPTimeoutSeconds *int    `json:"http_timeout_seconds"`
	HeadlineLimit      *int    `json:"headline_limit"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags via flagx.JsonConfigFlags; when no path is
// given nothing is loaded. Read or unmarshal errors panic, matching the
// defaults -> json -> env -> flags pipeline contract: a config file that was
// explicitly named must be usable.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataFile != nil {
		cfg.DataFilePath = *jc.DataFile
	}
	if jc.HTTPTimeoutSeconds != nil {
		cfg.HTTPTimeout = time.Duration(*jc.HTTPTimeoutSeconds) * time.Second
	}
	if jc.HeadlineLimit != nil {
		cfg.HeadlineLimit = *jc.HeadlineLimit
	}
}
