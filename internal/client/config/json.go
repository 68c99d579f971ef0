package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akorlov/mapmark/internal/flagx"
	"github.com/akorlov/mapmark/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "14m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerURL       string         `json:"server_url"`
	RenewalInterval timex.Duration `json:"renewal_interval"`
	StatePath       string         `json:"state_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags(); when no
// path is given, nothing is loaded. Read or unmarshal errors panic.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
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

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RenewalInterval.Duration != 0 {
		cfg.RenewalInterval = time.Duration(jc.RenewalInterval.Duration)
	}
	if jc.StatePath != "" {
		cfg.StatePath = jc.StatePath
	}
}
