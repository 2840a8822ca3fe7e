package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvAddr           = "BLOGADMIN_ADDR"
	EnvTokenTTL       = "BLOGADMIN_TOKEN_TTL"
	EnvLatency        = "BLOGADMIN_LATENCY"
	EnvSeedData       = "BLOGADMIN_SEED_DATA"
	EnvLogLevel       = "BLOGADMIN_LOG_LEVEL"
	EnvLogFormat      = "BLOGADMIN_LOG_FORMAT"
	EnvAllowedOrigins = "BLOGADMIN_ALLOWED_ORIGINS"
)

type lookupFunc func(key string) (string, bool)

// parseEnv overlays process environment variables. Values from the dotenv
// file named by -env fill in keys the process environment does not set.
func parseEnv(config *Config) {
	fileVars := map[string]string{}
	if path := flagx.EnvFileFlag(); path != "" {
		vars, err := godotenv.Read(path)
		if err != nil {
			panic(err)
		}
		fileVars = vars
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if err := applyEnv(config, lookup); err != nil {
		panic(err)
	}
}

func applyEnv(config *Config, lookup lookupFunc) error {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
	if v, ok := lookup(EnvTokenTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTokenTTL, err)
		}
		config.TokenTTL = d
	}
	if v, ok := lookup(EnvLatency); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLatency, err)
		}
		config.Latency = d
	}
	if v, ok := lookup(EnvSeedData); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeedData, err)
		}
		config.SeedData = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		config.LogFormat = v
	}
	if v, ok := lookup(EnvAllowedOrigins); ok {
		config.AllowedOrigins = splitList(v)
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
