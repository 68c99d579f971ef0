package config

import "time"

// Config holds runtime settings for the mapmark CLI.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP endpoint.
//   - RenewalInterval: how often the access token is renewed in the background.
//   - StatePath: path to the local SQLite database holding the session state.
//
// Units: RenewalInterval is a time.Duration (e.g., 14*time.Minute).
type Config struct {
	ServerURL       string
	RenewalInterval time.Duration
	StatePath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.RenewalInterval = 14 * time.Minute
	c.StatePath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
