package config

import "time"

// Config holds runtime settings for the CoverMate CLI.
//
// Fields:
//   - BaseURL: root URL of the recommendation backend; request URLs are
//     BaseURL + "/" + path.
//   - RequestTimeout: bound on a whole HTTP round trip.
//   - DatabasePath: location of the local SQLite settings database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "covermate.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file
// (if one is named via -c/-config), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
