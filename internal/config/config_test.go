package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CSADMIN_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "csadmin", cfg.AppName)
	assert.Equal(t, ":5443", cfg.Listen)
	assert.Equal(t, BackendDatabase, cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/etc/xroad/db.properties", cfg.DB.PropertiesFile)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
listen: ":8443"
backend: api
log_level: debug
db:
  properties_file: /tmp/db.properties
  host: db.internal
  port: "5433"
api:
  url: https://cs.example.org:4000/api/v1
  key: d8e1498a-ae27-4872-8b3e-1cd5b9d76dcb
  ca_file: /etc/xroad/ca.pem
  timeout_seconds: 3
`)
	t.Setenv("CSADMIN_CONFIG", path)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8443", cfg.Listen)
	assert.Equal(t, BackendAPI, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/db.properties", cfg.DB.PropertiesFile)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "5433", cfg.DB.Port)
	assert.Equal(t, "https://cs.example.org:4000/api/v1", cfg.API.URL)
	assert.Equal(t, "d8e1498a-ae27-4872-8b3e-1cd5b9d76dcb", cfg.API.Key)
	assert.Equal(t, "/etc/xroad/ca.pem", cfg.API.CAFile)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout())
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestNormalizeBackend(t *testing.T) {
	assert.Equal(t, BackendAPI, normalizeBackend(" API "))
	assert.Equal(t, BackendDatabase, normalizeBackend("database"))
	assert.Equal(t, BackendDatabase, normalizeBackend(""))
	assert.Equal(t, BackendDatabase, normalizeBackend("bogus"))
}
