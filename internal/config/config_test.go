package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
session:
  secret: file-secret
  store: memory
scoring:
  base_url: http://scoring:5000
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "http://scoring:5000", cfg.Scoring.BaseURL)
	assert.Equal(t, "24h", cfg.Session.TTL)
	assert.Equal(t, "smartmatch_session", cfg.Session.CookieName)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxResumeBytes)
	assert.Equal(t, "5s", cfg.Scoring.ConnectTimeout)
	assert.Equal(t, "10s", cfg.Scoring.RequestTimeout)
	assert.Equal(t, []string{"extractor_cli.py"}, cfg.ExtractorArgs())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
session:
  secret: file-secret
storage:
  delete_replaced: false
`)
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("STORAGE_DELETE_REPLACED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_STORE", "redis")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.True(t, cfg.Storage.DeleteReplaced)
	assert.Equal(t, 3, cfg.Session.Redis.DB)
	assert.Equal(t, "redis", cfg.Session.Store)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing secret", "session:\n  store: memory\n"},
		{"unknown store", "session:\n  secret: s\n  store: etcd\n"},
		{"s3 without bucket", "session:\n  secret: s\nstorage:\n  driver: s3\n"},
		{"bad timeout", "session:\n  secret: s\nextractor:\n  timeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv_InvalidValue(t *testing.T) {
	cfg := &Config{}
	lookup := func(key string) (string, bool) {
		if key == "DB_MAX_OPEN_CONNS" {
			return "many", true
		}
		return "", false
	}

	err := applyEnv(reflect.ValueOf(cfg), lookup)
	assert.Error(t, err)
}
