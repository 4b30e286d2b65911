package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, SourceStatic, cfg.Catalog.Source)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  mode: debug
  cors_origins: ["http://localhost:5173"]
log_level: debug
catalog:
  source: sqlite
  database_path: /tmp/camp.db
cache:
  backend: none
  ttl: 5m
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SourceSQLite, cfg.Catalog.Source)
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 9090, cfg.Metrics.Port, "unset fields keep their defaults")
	assert.Len(t, cfg.Impact.VendorIncome, 6)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "sever:\n  port: 1\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"port out of range":    func(c *Config) { c.Server.Port = 70000 },
		"unknown mode":         func(c *Config) { c.Server.Mode = "turbo" },
		"unknown source":       func(c *Config) { c.Catalog.Source = "csv" },
		"sqlite without path":  func(c *Config) { c.Catalog.Source = SourceSQLite; c.Catalog.DatabasePath = "" },
		"redis without addr":   func(c *Config) { c.Cache.Backend = CacheRedis; c.Cache.RedisAddr = "" },
		"unknown log level":    func(c *Config) { c.LogLevel = "loud" },
		"metrics path":         func(c *Config) { c.Metrics.Path = "metrics" },
		"empty origin":         func(c *Config) { c.Server.CORSOrigins = []string{""} },
		"deliveries inverted":  func(c *Config) { c.Impact.OnTimeDeliveries = 10; c.Impact.TotalDeliveries = 5 },
		"unnamed income line":  func(c *Config) { c.Impact.VendorIncome = []VendorIncomeLine{{Income: 1}} },
		"equity above hundred": func(c *Config) { c.Impact.EquityScore = 101 },
		"unknown provider":     func(c *Config) { c.Agents.Provider = "oracle" },
		"openai without model": func(c *Config) { c.Agents.Provider = ProviderOpenAI },
		"malformed base url":   func(c *Config) { c.Agents.BaseURL = "not a url" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CAMPCONNECT_PORT":           "8181",
		"CAMPCONNECT_LOG_LEVEL":      "warn",
		"CAMPCONNECT_CATALOG_SOURCE": "sqlite",
		"CAMPCONNECT_REDIS_ADDR":     "redis:6379",
		"CAMPCONNECT_AGENT_PROVIDER": "openai",
		"CAMPCONNECT_AGENT_MODEL":    "gpt-4o-mini",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, SourceSQLite, cfg.Catalog.Source)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, ProviderOpenAI, cfg.Agents.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Agents.Model)

	env["CAMPCONNECT_PORT"] = "eighty"
	assert.ErrorIs(t, Default().applyEnv(lookup), ErrInvalid)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CAMPCONNECT_PORT", "7070")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("info", "json", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	LogError(logger, "catalog", "Reload", map[string]int{"version": 3}, errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "boom", line["msg"])
	assert.Equal(t, "catalog", line["module"])
	assert.Equal(t, "Reload", line["op"])
	assert.Equal(t, "error", line["level"])

	_, err = NewLogger("loud", "json", &buf)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = NewLogger("info", "xml", &buf)
	assert.ErrorIs(t, err, ErrInvalid)
}
