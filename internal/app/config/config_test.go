package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte(body), 0o644))
	t.Chdir(dir)
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "")
	t.Setenv("JWT_KEY", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SERVICE_PORT", "")
	writeConfig(t, "ServiceHost = \"127.0.0.1\"\n")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, 3, cfg.DefaultPageSize)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Empty(t, cfg.JwtKey)
}

func TestNewConfig_FileAndEnv(t *testing.T) {
	t.Setenv("CONFIG_NAME", "")
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SERVICE_PORT", "9090")
	writeConfig(t, `
ServicePort = 8000
DefaultPageSize = 5

[RateLimit]
Enabled = true
RPS = 2.5
Burst = 4
`)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, "secret", cfg.JwtKey)
	assert.Equal(t, 5, cfg.DefaultPageSize)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 4, cfg.RateLimit.Burst)
}

func TestNewConfig_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_NAME", "absent")
	t.Chdir(t.TempDir())

	_, err := NewConfig()
	assert.Error(t, err)
}
