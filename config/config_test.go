package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "BTC", cfg.Base)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "https://api.coinbase.com/v2", cfg.Coinbase.URL)
	assert.Equal(t, 5*time.Second, cfg.Coinbase.Timeout)
	assert.Equal(t, 10.0, cfg.Coinbase.RequestsPerSecond)
	assert.Equal(t, 10, cfg.Coinbase.Burst)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BTCCONV_HTTP_ADDR", ":9090")
	t.Setenv("BTCCONV_COINBASE_TIMEOUT", "250ms")
	t.Setenv("BTCCONV_LOG_FORMAT", "json")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Coinbase.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
env: prod
base: ETH
http:
  addr: ":3000"
coinbase:
  url: "http://localhost:1234/v2"
  timeout: 2s
  requests_per_second: 2.5
  burst: 3
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "ETH", cfg.Base)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:1234/v2", cfg.Coinbase.URL)
	assert.Equal(t, 2*time.Second, cfg.Coinbase.Timeout)
	assert.Equal(t, 2.5, cfg.Coinbase.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Coinbase.Burst)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("BTCCONV_LOG_FORMAT", "xml")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown log format")
}
