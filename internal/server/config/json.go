package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blogadmin/internal/flagx"
	"github.com/dmitrijs2005/blogadmin/internal/timex"
)

// JsonConfig is the on-disk shape. Durations accept "1h" or nanoseconds.
// Absent fields keep the previous value.
type JsonConfig struct {
	EndpointAddrHTTP string          `json:"endpoint_addr_http"`
	TokenTTL         *timex.Duration `json:"token_ttl"`
	Latency          *timex.Duration `json:"latency"`
	SeedData         *bool           `json:"seed_data"`
	LogLevel         string          `json:"log_level"`
	LogFormat        string          `json:"log_format"`
	AllowedOrigins   []string        `json:"allowed_origins"`
}

// parseJson overlays the file named by -c/-config, if any.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}
	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.Latency != nil {
		config.Latency = c.Latency.Duration
	}
	if c.SeedData != nil {
		config.SeedData = *c.SeedData
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
}
