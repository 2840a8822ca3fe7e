package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := defaults()
	err := applyEnv(cfg, mapLookup(map[string]string{
		EnvAddr:           ":9999",
		EnvTokenTTL:       "5m",
		EnvLatency:        "300ms",
		EnvSeedData:       "false",
		EnvLogLevel:       "debug",
		EnvLogFormat:      "text",
		EnvAllowedOrigins: "http://a, http://b,,",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.Latency)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.AllowedOrigins)
}

func TestApplyEnv_EmptyKeepsDefaults(t *testing.T) {
	cfg := defaults()
	require.NoError(t, applyEnv(cfg, mapLookup(map[string]string{EnvAddr: "", EnvTokenTTL: ""})))
	assert.Equal(t, defaults(), cfg)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		EnvTokenTTL: "forever",
		EnvLatency:  "soon",
		EnvSeedData: "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			err := applyEnv(defaults(), mapLookup(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func Test_parseEnv_DotenvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "local.env")
	require.NoError(t, os.WriteFile(path, []byte("# local overrides\nBLOGADMIN_LATENCY=2s\nBLOGADMIN_LOG_FORMAT=text\n"), 0o600))

	t.Setenv(EnvLogFormat, "json")
	os.Args = []string{"testbin", "-env", path}

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, 2*time.Second, cfg.Latency)
	// The process environment wins over the file.
	assert.Equal(t, "json", cfg.LogFormat)
}

func Test_parseEnv_MissingFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "nope.env")}
	require.Panics(t, func() { parseEnv(defaults()) })
}
