// Package config assembles the client's runtime settings from defaults,
// an optional JSON file, and command-line flags, in that order of
// precedence (later sources win).
package config

// Config holds runtime settings for the account client.
type Config struct {
	// ServerEndpointAddr is the base URL of the account API.
	ServerEndpointAddr string

	// DatabaseFilePath is the local sqlite file holding client state
	// (the persisted session token).
	DatabaseFilePath string

	// LogLevel is a zap level string: debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:5000"
	c.DatabaseFilePath = "account.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config: defaults, then JSON overlay (when a
// config file was named on the command line), then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
