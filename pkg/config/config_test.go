package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, EnvSepolia, cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5*time.Minute, cfg.Agent.IngressExpiry)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Auth.Enabled)
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
environment: mainnet
server:
  port: 9000
  request_timeout: 45s
logging:
  level: debug
  format: console
metrics:
  enabled: false
auth:
  enabled: true
  jwks_url: https://auth.example.com/.well-known/jwks.json
  issuer: https://auth.example.com
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, EnvMainnet, cfg.Environment)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "https://auth.example.com", cfg.Auth.Issuer)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown environment": "environment: devnet",
		"bad port":            "server:\n  port: 70000",
		"bad log level":       "logging:\n  level: loud",
		"auth without jwks":   "auth:\n  enabled: true",
		"bad jwks url":        "auth:\n  jwks_url: not a url",
		"missing pem file":    "identity:\n  pem_file: /nonexistent/identity.pem",
		"malformed yaml":      "server: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: mainnet\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, EnvMainnet, cfg.Environment)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_EnvironmentOverride(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	cfg.Environment = EnvMainnet
	assert.NoError(t, cfg.Validate())

	cfg.Environment = "localnet"
	assert.Error(t, cfg.Validate())
}
