// Package config handles configuration for the mock API server: defaults,
// then a JSON file, then environment variables (optionally read from a
// dotenv file), then command-line flags. Each layer overrides the previous.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP shim.
//   - TokenTTL: lifetime of tokens issued on login.
//   - Latency: artificial delay added before each API call.
//   - SeedData: load the fixture users, posts and notifications at start.
//   - LogLevel / LogFormat: slog level and "json" or "text" output.
//   - AllowedOrigins: CORS origins for the browser front-end.
type Config struct {
	EndpointAddrHTTP string
	TokenTTL         time.Duration
	Latency          time.Duration
	SeedData         bool
	LogLevel         string
	LogFormat        string
	AllowedOrigins   []string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.TokenTTL = time.Hour
	c.Latency = 0
	c.SeedData = true
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.AllowedOrigins = []string{"http://localhost:4200"}
}

// LoadConfig applies every layer in order. Invalid input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
